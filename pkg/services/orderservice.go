package services

import (
	"context"
	"log"
	"time"

	"blackcart-io/api/email"
	"blackcart-io/api/internal/common"
	"blackcart-io/api/pkg/models"
	"blackcart-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderService struct {
	orderCollection   *mongo.Collection
	sellerCollection  *mongo.Collection
	productCollection *mongo.Collection
	emailPool         *email.EmailWorkerPool
}

func NewOrderService(emailPool *email.EmailWorkerPool) OrderService {
	return &orderService{
		orderCollection:   common.OrderCollection,
		sellerCollection:  common.SellerCollection,
		productCollection: common.ProductCollection,
		emailPool:         emailPool,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	now := time.Now()

	sellerID, err := req.SellerID.ObjectID()
	if err != nil {
		return nil, err
	}

	var seller models.Seller
	err = s.sellerCollection.FindOne(ctx, bson.M{"_id": sellerID}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	order, err := models.AssembleOrder(req, sellerID, now)
	if err != nil {
		return nil, err
	}

	_, err = s.orderCollection.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	s.recordOrderStats(ctx, &order)
	s.notifyOrderCreated(&seller, &order)

	return &order, nil
}

// recordOrderStats bumps the seller and product counters that back the
// dashboard. Failures here never fail the order.
func (s *orderService) recordOrderStats(ctx context.Context, order *models.Order) {
	_, err := s.sellerCollection.UpdateOne(ctx,
		bson.M{"_id": order.SellerID},
		bson.M{"$inc": bson.M{"total_orders": 1, "total_sales": order.Total}})
	if err != nil {
		log.Printf("failed to bump order counters for seller %s: %v", order.SellerID.Hex(), err)
	}

	for _, item := range order.Items {
		_, err := s.productCollection.UpdateOne(ctx,
			bson.M{"_id": item.ProductID},
			bson.M{"$inc": bson.M{"sold_count": item.Quantity}})
		if err != nil {
			log.Printf("failed to bump sold_count for product %s: %v", item.ProductID.Hex(), err)
		}
	}
}

// notifyOrderCreated enqueues the fire-and-forget seller and buyer mails.
func (s *orderService) notifyOrderCreated(seller *models.Seller, order *models.Order) {
	s.emailPool.Enqueue(email.EmailJob{Type: "order_seller", Data: email.BlackcartEmailData{
		Email:     seller.Email,
		Name:      seller.FullName,
		StoreName: seller.StoreName,
		OrderRef:  order.OrderID,
		Total:     order.Total,
		ItemCount: len(order.Items),
	}})

	if order.CustomerEmail != "" {
		s.emailPool.Enqueue(email.EmailJob{Type: "order_buyer", Data: email.BlackcartEmailData{
			Email:     order.CustomerEmail,
			Name:      order.Buyer.FullName,
			StoreName: seller.StoreName,
			OrderRef:  order.OrderID,
			Total:     order.Total,
			ItemCount: len(order.Items),
		}})
	}
}

// Checkout fans a multi-seller cart out into one order per seller. The
// creates are independent: a failure for one seller doesn't roll back the
// orders already committed, it shows up as that seller's outcome instead.
func (s *orderService) Checkout(ctx context.Context, req models.CheckoutRequest) ([]models.CheckoutOutcome, error) {
	groups := make(map[models.SellerRef][]models.CheckoutItemRequest)
	var sellerOrder []models.SellerRef
	for _, item := range req.Items {
		if _, seen := groups[item.SellerID]; !seen {
			sellerOrder = append(sellerOrder, item.SellerID)
		}
		groups[item.SellerID] = append(groups[item.SellerID], item)
	}

	// Shipping is split evenly across the per-seller orders.
	shippingShare := req.Shipping / float64(len(groups))

	outcomes := make([]models.CheckoutOutcome, 0, len(groups))
	for _, sellerRef := range sellerOrder {
		items := groups[sellerRef]

		orderItems := make([]models.OrderItemRequest, 0, len(items))
		subtotal := 0.0
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItemRequest{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Price:       item.Price,
			})
			subtotal += item.Price * float64(item.Quantity)
		}

		order, err := s.CreateOrder(ctx, models.CreateOrderRequest{
			SellerID: sellerRef,
			Items:    orderItems,
			Subtotal: subtotal,
			Shipping: shippingShare,
			Total:    subtotal + shippingShare,
			Buyer:    req.Buyer,
			Notes:    req.Notes,
		})
		if err != nil {
			outcomes = append(outcomes, models.CheckoutOutcome{
				SellerID: string(sellerRef),
				Error:    err.Error(),
			})
			continue
		}

		outcomes = append(outcomes, models.CheckoutOutcome{
			SellerID: string(sellerRef),
			OrderID:  order.OrderID,
		})
	}

	return outcomes, nil
}

func (s *orderService) ListAllOrders(ctx context.Context, pagination util.PaginationArgs) ([]models.OrderWithStore, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$skip", Value: pagination.Skip}},
		{{Key: "$limit", Value: pagination.Limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "Seller",
			"localField":   "seller_id",
			"foreignField": "_id",
			"as":           "seller",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$seller", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{"store_name": "$seller.store_name"}}},
		{{Key: "$project", Value: bson.M{"seller": 0}}},
	}

	cursor, err := s.orderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var orders []models.OrderWithStore
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}

	count, err := s.orderCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (s *orderService) ListSellerOrders(ctx context.Context, sellerID primitive.ObjectID) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.orderCollection.Find(ctx, bson.M{"seller_id": sellerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.orderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	now := time.Now()

	// Any status may move to any other, including backwards; only
	// membership in the enum is enforced.
	if !models.ValidOrderStatus(status) {
		return nil, errors.Errorf("invalid order status %q", status)
	}

	var order models.Order
	err := s.orderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":  bson.M{"status": status, "updated_at": now},
			"$push": bson.M{"status_history": models.StatusChange{Status: status, ChangedAt: now}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.orderCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
