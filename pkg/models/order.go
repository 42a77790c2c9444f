package models

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses. Any
// status may transition to any other; only membership is checked.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID   primitive.ObjectID `bson:"product_id" json:"productId"`
	ProductName string             `bson:"product_name" json:"productName"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
}

type OrderBuyer struct {
	FullName string `bson:"full_name" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address" json:"address"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	ZipCode  string `bson:"zip_code" json:"zipCode"`
}

type StatusChange struct {
	Status    OrderStatus `bson:"status" json:"status"`
	ChangedAt time.Time   `bson:"changed_at" json:"changedAt"`
}

type Order struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	OrderID  string             `bson:"order_id" json:"orderId"`
	SellerID primitive.ObjectID `bson:"seller_id" json:"sellerId"`
	Items    []OrderItem        `bson:"items" json:"items"`
	Subtotal float64            `bson:"subtotal" json:"subtotal"`
	Shipping float64            `bson:"shipping" json:"shipping"`
	Total    float64            `bson:"total" json:"total"`
	Status   OrderStatus        `bson:"status" json:"status"`
	// Append-only audit of status transitions, including the initial one.
	StatusHistory []StatusChange `bson:"status_history" json:"statusHistory"`
	Buyer         OrderBuyer     `bson:"buyer" json:"buyer"`
	// Flattened copies of the buyer contact fields, kept for simpler
	// dashboard queries.
	CustomerEmail   string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone   string    `bson:"customer_phone" json:"customerPhone"`
	DeliveryAddress string    `bson:"delivery_address" json:"deliveryAddress"`
	Notes           string    `bson:"notes" json:"notes"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// OrderWithStore is an Order with the seller's store name joined in for
// the admin listing.
type OrderWithStore struct {
	Order     `bson:",inline"`
	StoreName string `bson:"store_name" json:"storeName"`
}

// SellerRef is the order payload's seller identifier. The contract is a
// plain hex string; older clients sent {"_id": "..."} or {"id": "..."}
// objects, which the unmarshaller unwraps so the tolerance stays at the
// JSON boundary and out of the services.
type SellerRef string

func (r *SellerRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = SellerRef(s)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.New("sellerId must be a string or a legacy id object")
	}
	for _, key := range []string{"_id", "id"} {
		if raw, ok := obj[key]; ok {
			if err := json.Unmarshal(raw, &s); err != nil {
				return errors.Errorf("sellerId.%s must be a string", key)
			}
			*r = SellerRef(s)
			return nil
		}
	}

	return errors.New("sellerId object carries neither _id nor id")
}

// ObjectID resolves the reference to a mongo object id.
func (r SellerRef) ObjectID() (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(string(r))
	if err != nil {
		return primitive.NilObjectID, errors.Errorf("invalid seller reference %q", string(r))
	}
	return id, nil
}

// AssembleOrder turns a create request into the order document: fresh
// order reference, server-computed line subtotals, buyer snapshot with the
// flattened contact copies, and the initial status history entry. The
// top-level subtotal/shipping/total come from the caller as submitted.
func AssembleOrder(req CreateOrderRequest, sellerID primitive.ObjectID, now time.Time) (Order, error) {
	status := req.Status
	if status == "" {
		status = OrderStatusPending
	} else if !ValidOrderStatus(status) {
		return Order{}, errors.Errorf("invalid order status %q", status)
	}

	items := make([]OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return Order{}, errors.Errorf("invalid product reference %q", item.ProductID)
		}
		items = append(items, OrderItem{
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Price * float64(item.Quantity),
		})
	}

	return Order{
		ID:       primitive.NewObjectID(),
		OrderID:  GenerateOrderID(),
		SellerID: sellerID,
		Items:    items,
		Subtotal: req.Subtotal,
		Shipping: req.Shipping,
		Total:    req.Total,
		Status:   status,
		StatusHistory: []StatusChange{
			{Status: status, ChangedAt: now},
		},
		Buyer:           req.Buyer,
		CustomerEmail:   req.Buyer.Email,
		CustomerPhone:   req.Buyer.Phone,
		DeliveryAddress: req.Buyer.Address,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

type OrderItemRequest struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type CreateOrderRequest struct {
	SellerID SellerRef          `json:"sellerId" validate:"required"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal float64            `json:"subtotal" validate:"gte=0"`
	Shipping float64            `json:"shipping" validate:"gte=0"`
	Total    float64            `json:"total" validate:"gte=0"`
	Status   OrderStatus        `json:"status" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	Buyer    OrderBuyer         `json:"buyer"`
	Notes    string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

// CheckoutItemRequest is an order line tagged with its seller, as submitted
// by a multi-seller cart checkout.
type CheckoutItemRequest struct {
	SellerID    SellerRef `json:"sellerId" validate:"required"`
	ProductID   string    `json:"productId" validate:"required"`
	ProductName string    `json:"productName" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
	Price       float64   `json:"price" validate:"gte=0"`
}

type CheckoutRequest struct {
	Items    []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
	Shipping float64               `json:"shipping" validate:"gte=0"`
	Buyer    OrderBuyer            `json:"buyer"`
	Notes    string                `json:"notes"`
}

// CheckoutOutcome is one seller's result from a fan-out checkout. Exactly
// one of OrderID or Error is set.
type CheckoutOutcome struct {
	SellerID string `json:"sellerId"`
	OrderID  string `json:"orderId,omitempty"`
	Error    string `json:"error,omitempty"`
}

const orderIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateOrderID builds a human-readable order reference:
// "ORD-" + unix millis + "-" + 9 random base36 characters. Not a global
// uniqueness guarantee, but collisions are vanishingly unlikely and the
// unique index on order_id catches the rest.
func GenerateOrderID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means far bigger problems; fall back to time.
		return "ORD-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	for i, b := range buf {
		buf[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}

	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), string(buf))
}
