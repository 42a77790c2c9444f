package controllers

import (
	"net/http"

	"blackcart-io/api/internal/common"
	"blackcart-io/api/pkg/models"
	"blackcart-io/api/pkg/services"
	"blackcart-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderController takes checkout submissions and serves the order
// management surface.
type OrderController struct {
	orderService services.OrderService
}

func InitOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Create records a single-seller order.
// POST /api/orders/create
func (oc *OrderController) Create(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orderService.CreateOrder(ctx, req)
	if err != nil {
		if err == services.ErrNotFound {
			util.HandleError(c, http.StatusNotFound, err)
			return
		}
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Order created", order)
}

// Checkout fans a multi-seller cart out into per-seller orders. Partial
// failure answers 207 with the per-seller outcomes; total failure 400.
// POST /api/orders/checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	outcomes, err := oc.orderService.Checkout(ctx, req)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Error != "" {
			failed++
		}
	}

	switch {
	case failed == 0:
		util.HandleSuccess(c, http.StatusCreated, "Checkout complete", outcomes)
	case failed == len(outcomes):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":   http.StatusBadRequest,
			"error":    "checkout failed for every seller",
			"outcomes": outcomes,
		})
	default:
		util.HandleSuccess(c, http.StatusMultiStatus, "Checkout partially complete", outcomes)
	}
}

// ListAll is the cross-seller order listing with store names joined in.
// GET /api/orders/all
func (oc *OrderController) ListAll(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	pagination := GetPaginationArgs(c)

	orders, count, err := oc.orderService.ListAllOrders(ctx, pagination)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "Orders", orders, util.Pagination{
		Limit: pagination.Limit,
		Skip:  pagination.Skip,
		Count: count,
	})
}

// ListSeller lists one seller's orders, newest first.
// GET /api/orders/seller/:sellerId
func (oc *OrderController) ListSeller(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, err := primitive.ObjectIDFromHex(c.Param("sellerId"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := oc.orderService.ListSellerOrders(ctx, sellerID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller orders", orders)
}

// Get returns one order by id.
// GET /api/orders/:orderId
func (oc *OrderController) Get(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orderService.GetOrder(ctx, orderID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Order", order)
}

// UpdateStatus moves an order to a new status and appends to its history.
// PUT /api/orders/update/:orderId
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orderService.UpdateOrderStatus(ctx, orderID, req.Status)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Order status updated", order)
}

// Delete removes an order permanently.
// DELETE /api/orders/:orderId
func (oc *OrderController) Delete(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.orderService.DeleteOrder(ctx, orderID); err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Order deleted", nil)
}
