package common

import (
	"strings"
	"time"

	"blackcart-io/api/pkg/util"

	"github.com/go-playground/validator/v10"
)

// Database collections
var (
	SellerCollection  = util.GetCollection(util.DB, "Seller")
	ProductCollection = util.GetCollection(util.DB, "Product")
	OrderCollection   = util.GetCollection(util.DB, "Order")

	Validate = validator.New()
)

const (
	REQUEST_TIMEOUT_SECS     = 2 * 60 * time.Second
	MONGO_DUPLICATE_KEY_CODE = 11000

	RESET_TOKEN_EXPIRATION_TIME = 1 * time.Hour

	MAX_PRODUCT_IMAGE_BYTES = 5 << 20
)

// IsEmptyString checks if a string is empty
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}
