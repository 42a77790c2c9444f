package controllers

import (
	"net/http"

	"blackcart-io/api/pkg/models"
	"blackcart-io/api/internal/common"
	"blackcart-io/api/pkg/services"
	"blackcart-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerController serves the seller's own store surface plus the public
// seller directory.
type SellerController struct {
	sellerService services.SellerService
	orderService  services.OrderService
}

func InitSellerController(sellerService services.SellerService, orderService services.OrderService) *SellerController {
	return &SellerController{
		sellerService: sellerService,
		orderService:  orderService,
	}
}

// Dashboard aggregates the seller's running counters and most recent
// orders for the store home screen.
// GET /api/seller/dashboard
func (sc *SellerController) Dashboard(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	seller, err := sc.sellerService.GetSellerByID(ctx, sellerID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	orders, err := sc.orderService.ListSellerOrders(ctx, sellerID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	recentOrders := orders
	if len(recentOrders) > 5 {
		recentOrders = recentOrders[:5]
	}

	util.HandleSuccess(c, http.StatusOK, "Seller dashboard", gin.H{
		"stats": gin.H{
			"totalSales":    seller.TotalSales,
			"totalOrders":   seller.TotalOrders,
			"totalProducts": seller.TotalProducts,
			"totalReviews":  seller.TotalReviews,
			"rating":        seller.Rating,
		},
		"isVerified":   seller.IsVerified,
		"storeName":    seller.StoreName,
		"storeSlug":    seller.StoreSlug,
		"recentOrders": recentOrders,
	})
}

// Info returns the seller's own account details.
// GET /api/seller/info
func (sc *SellerController) Info(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	seller, err := sc.sellerService.GetSellerByID(ctx, sellerID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller info", seller.Sanitized())
}

// Update patches the seller's store profile. A changed store name also
// gets a fresh slug.
// PUT /api/seller/update
func (sc *SellerController) Update(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	var req models.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	seller, err := sc.sellerService.UpdateSeller(ctx, sellerID, req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller updated", seller.Sanitized())
}

// ListSellers is the public directory of verified sellers.
// GET /api/sellers/all
func (sc *SellerController) ListSellers(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	pagination := GetPaginationArgs(c)

	sellers, count, err := sc.sellerService.ListVerifiedSellers(ctx, pagination)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "Sellers", sellers, util.Pagination{
		Limit: pagination.Limit,
		Skip:  pagination.Skip,
		Count: count,
	})
}

// GetSeller is the public storefront profile of one seller.
// GET /api/sellers/:sellerId
func (sc *SellerController) GetSeller(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, err := primitive.ObjectIDFromHex(c.Param("sellerId"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	seller, err := sc.sellerService.GetSellerByID(ctx, sellerID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller", seller.Public())
}
