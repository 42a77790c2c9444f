package validators

import (
	"strconv"
	"strings"
)

// ProductInput is the parsed and validated form of a product create call.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
}

// ValidateProductInput requires all five create fields to be present and
// parses the numeric ones. Price and quantity must be non-negative.
func ValidateProductInput(name, description, price, quantity, category string) (ProductInput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProductInput{}, &InputValidationError{
			Message: "product name is required",
			Field:   "name",
			Tag:     "required",
		}
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return ProductInput{}, &InputValidationError{
			Message: "product description is required",
			Field:   "description",
			Tag:     "required",
		}
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return ProductInput{}, &InputValidationError{
			Message: "product category is required",
			Field:   "category",
			Tag:     "required",
		}
	}

	if strings.TrimSpace(price) == "" {
		return ProductInput{}, &InputValidationError{
			Message: "product price is required",
			Field:   "price",
			Tag:     "required",
		}
	}
	parsedPrice, err := strconv.ParseFloat(price, 64)
	if err != nil || parsedPrice < 0 {
		return ProductInput{}, &InputValidationError{
			Message: "price must be a non-negative number",
			Field:   "price",
			Tag:     "gte",
		}
	}

	if strings.TrimSpace(quantity) == "" {
		return ProductInput{}, &InputValidationError{
			Message: "product quantity is required",
			Field:   "quantity",
			Tag:     "required",
		}
	}
	parsedQuantity, err := strconv.Atoi(quantity)
	if err != nil || parsedQuantity < 0 {
		return ProductInput{}, &InputValidationError{
			Message: "quantity must be a non-negative integer",
			Field:   "quantity",
			Tag:     "gte",
		}
	}

	return ProductInput{
		Name:        name,
		Description: description,
		Price:       parsedPrice,
		Quantity:    parsedQuantity,
		Category:    category,
	}, nil
}
