package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProductInput(t *testing.T) {
	input, err := ValidateProductInput("Mug", "A sturdy mug", "19.99", "3", "kitchen")
	require.NoError(t, err)
	assert.Equal(t, "Mug", input.Name)
	assert.Equal(t, "A sturdy mug", input.Description)
	assert.Equal(t, 19.99, input.Price)
	assert.Equal(t, 3, input.Quantity)
	assert.Equal(t, "kitchen", input.Category)
}

func TestValidateProductInputRequiresEveryField(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		description string
		price       string
		quantity    string
		category    string
		wantField   string
	}{
		{"missing name", "", "desc", "5", "1", "kitchen", "name"},
		{"missing description", "Mug", "", "5", "1", "kitchen", "description"},
		{"missing price", "Mug", "desc", "", "1", "kitchen", "price"},
		{"missing quantity", "Mug", "desc", "5", "", "kitchen", "quantity"},
		{"missing category", "Mug", "desc", "5", "1", "", "category"},
		{"whitespace-only name", "   ", "desc", "5", "1", "kitchen", "name"},
		{"unparseable price", "Mug", "desc", "cheap", "1", "kitchen", "price"},
		{"negative price", "Mug", "desc", "-5", "1", "kitchen", "price"},
		{"unparseable quantity", "Mug", "desc", "5", "many", "kitchen", "quantity"},
		{"negative quantity", "Mug", "desc", "5", "-1", "kitchen", "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateProductInput(tt.productName, tt.description, tt.price, tt.quantity, tt.category)
			require.Error(t, err)
			var vErr *InputValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}
