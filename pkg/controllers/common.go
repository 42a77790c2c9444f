package controllers

import (
	"context"
	"net/http"
	"strconv"

	"blackcart-io/api/internal/auth"
	"blackcart-io/api/internal/common"
	"blackcart-io/api/pkg/services"
	"blackcart-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithTimeout creates a context with the standard request timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}

// ValidateAndGetSellerID validates the seller ID and handles errors automatically
func ValidateAndGetSellerID(c *gin.Context) (primitive.ObjectID, bool) {
	sellerID, err := auth.ValidateSellerID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return primitive.NilObjectID, false
	}
	return sellerID, true
}

func GetPaginationArgs(c *gin.Context) util.PaginationArgs {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	sort := c.DefaultQuery("sort", "created_at_desc")

	return util.PaginationArgs{
		Limit: limit,
		Skip:  skip,
		Sort:  sort,
	}
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
func HandleServiceError(c *gin.Context, err error) {
	switch errors.Cause(err) {
	case services.ErrNotFound:
		util.HandleError(c, http.StatusNotFound, err)
	case services.ErrForbidden:
		util.HandleError(c, http.StatusForbidden, err)
	default:
		util.HandleError(c, http.StatusInternalServerError, err)
	}
}
