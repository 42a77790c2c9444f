package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID()

	require.True(t, strings.HasPrefix(id, "ORD-"), "unexpected prefix: %s", id)
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 9)
	for _, r := range parts[2] {
		assert.Contains(t, orderIDAlphabet, string(r))
	}
}

func TestGenerateOrderIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateOrderID()
		assert.False(t, seen[id], "duplicate order id %s", id)
		seen[id] = true
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(status), "expected %s to be valid", status)
	}

	assert.False(t, ValidOrderStatus("refunded"))
	assert.False(t, ValidOrderStatus(""))
}

func TestSellerRefUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    SellerRef
		wantErr bool
	}{
		{"plain string", `"64e1f30bfa1c2b0001a2b3c4"`, "64e1f30bfa1c2b0001a2b3c4", false},
		{"legacy underscore id object", `{"_id": "64e1f30bfa1c2b0001a2b3c4"}`, "64e1f30bfa1c2b0001a2b3c4", false},
		{"legacy id object", `{"id": "64e1f30bfa1c2b0001a2b3c4"}`, "64e1f30bfa1c2b0001a2b3c4", false},
		{"object without id keys", `{"sellerId": "64e1f30bfa1c2b0001a2b3c4"}`, "", true},
		{"number", `42`, "", true},
		{"non-string id", `{"_id": 42}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref SellerRef
			err := json.Unmarshal([]byte(tt.payload), &ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestSellerRefObjectID(t *testing.T) {
	id, err := SellerRef("64e1f30bfa1c2b0001a2b3c4").ObjectID()
	require.NoError(t, err)
	assert.Equal(t, "64e1f30bfa1c2b0001a2b3c4", id.Hex())

	_, err = SellerRef("not-a-hex-id").ObjectID()
	assert.Error(t, err)
}

func sampleCreateOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		SellerID: "64e1f30bfa1c2b0001a2b3c4",
		Items: []OrderItemRequest{
			{ProductID: "64e1f30bfa1c2b0001a2b3c5", ProductName: "Mug", Quantity: 3, Price: 19.99},
			{ProductID: "64e1f30bfa1c2b0001a2b3c6", ProductName: "Plate", Quantity: 1, Price: 7.50},
		},
		Subtotal: 67.47,
		Shipping: 5.25,
		Total:    72.72,
		Buyer: OrderBuyer{
			FullName: "Jo Doe",
			Email:    "jo@example.com",
			Phone:    "+1-555-0101",
			Address:  "1 Main St",
		},
		Notes: "leave at the door",
	}
}

func TestAssembleOrder(t *testing.T) {
	sellerID := primitive.NewObjectID()
	now := time.Now()

	order, err := AssembleOrder(sampleCreateOrderRequest(), sellerID, now)
	require.NoError(t, err)

	assert.Equal(t, sellerID, order.SellerID)
	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))

	// Line subtotals are recomputed server-side as price*quantity.
	require.Len(t, order.Items, 2)
	assert.Equal(t, 19.99*3, order.Items[0].Subtotal)
	assert.Equal(t, 7.50, order.Items[1].Subtotal)

	// The top-level totals pass through exactly as submitted.
	assert.Equal(t, 67.47, order.Subtotal)
	assert.Equal(t, 5.25, order.Shipping)
	assert.Equal(t, 72.72, order.Total)

	assert.Equal(t, OrderStatusPending, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, OrderStatusPending, order.StatusHistory[0].Status)
	assert.Equal(t, now, order.StatusHistory[0].ChangedAt)

	// Buyer contacts are snapshotted and flattened.
	assert.Equal(t, "jo@example.com", order.CustomerEmail)
	assert.Equal(t, "+1-555-0101", order.CustomerPhone)
	assert.Equal(t, "1 Main St", order.DeliveryAddress)
	assert.Equal(t, "Jo Doe", order.Buyer.FullName)
}

func TestAssembleOrderExplicitStatus(t *testing.T) {
	req := sampleCreateOrderRequest()
	req.Status = OrderStatusConfirmed

	order, err := AssembleOrder(req, primitive.NewObjectID(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, OrderStatusConfirmed, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, OrderStatusConfirmed, order.StatusHistory[0].Status)
}

func TestAssembleOrderRejectsUnknownStatus(t *testing.T) {
	req := sampleCreateOrderRequest()
	req.Status = "refunded"

	_, err := AssembleOrder(req, primitive.NewObjectID(), time.Now())
	assert.Error(t, err)
}

func TestAssembleOrderRejectsBadProductReference(t *testing.T) {
	req := sampleCreateOrderRequest()
	req.Items[0].ProductID = "not-a-hex-id"

	_, err := AssembleOrder(req, primitive.NewObjectID(), time.Now())
	assert.Error(t, err)
}

func TestAssembleOrderDuplicateCallsAreDistinctOrders(t *testing.T) {
	sellerID := primitive.NewObjectID()
	now := time.Now()
	req := sampleCreateOrderRequest()

	first, err := AssembleOrder(req, sellerID, now)
	require.NoError(t, err)
	second, err := AssembleOrder(req, sellerID, now)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestCreateOrderRequestAcceptsLegacySellerShape(t *testing.T) {
	payload := `{
		"sellerId": {"_id": "64e1f30bfa1c2b0001a2b3c4"},
		"items": [{"productId": "64e1f30bfa1c2b0001a2b3c5", "productName": "Mug", "quantity": 2, "price": 10}],
		"subtotal": 20,
		"shipping": 5,
		"total": 25,
		"buyer": {"fullName": "Jo Doe", "email": "jo@example.com"}
	}`

	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, SellerRef("64e1f30bfa1c2b0001a2b3c4"), req.SellerID)
	require.Len(t, req.Items, 1)
	assert.Equal(t, 2, req.Items[0].Quantity)
}
