package services

import (
	"context"
	"mime/multipart"

	"blackcart-io/api/pkg/models"
	"blackcart-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors the controllers map onto HTTP statuses.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// SellerService covers registration, authentication and store profile
// management.
type SellerService interface {
	Register(ctx context.Context, req models.RegisterSellerRequest) (*models.Seller, error)
	Authenticate(ctx context.Context, req models.SellerLoginRequest) (*models.Seller, error)
	GetSellerByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error)
	GetSellerBySlug(ctx context.Context, storeSlug string) (*models.Seller, error)
	UpdateSeller(ctx context.Context, id primitive.ObjectID, req models.UpdateSellerRequest) (*models.Seller, error)
	VerifySeller(ctx context.Context, id primitive.ObjectID) (*models.Seller, error)
	ListVerifiedSellers(ctx context.Context, pagination util.PaginationArgs) ([]models.SellerPublic, int64, error)

	// EnsureStoreSlug backfills a missing slug on legacy accounts.
	EnsureStoreSlug(ctx context.Context, seller *models.Seller) error

	BeginPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}

// CreateProductRequest carries the multipart form fields of a product
// create call. Image is optional.
type CreateProductRequest struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
	Image       multipart.File
}

// ProductService is the seller-scoped catalog plus its public read side.
type ProductService interface {
	CreateProduct(ctx context.Context, sellerID primitive.ObjectID, req CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, requesterID, productID primitive.ObjectID, patch models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, requesterID, productID primitive.ObjectID) error
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListSellerProducts(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error)
	ListPublicProducts(ctx context.Context, pagination util.PaginationArgs) ([]models.ProductWithSeller, int64, error)
	ListPublicProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.ProductWithSeller, error)
	ListPublicProductsByStoreSlug(ctx context.Context, storeSlug string) ([]models.ProductWithSeller, error)
}

// OrderService turns checkout submissions into durable orders.
type OrderService interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	Checkout(ctx context.Context, req models.CheckoutRequest) ([]models.CheckoutOutcome, error)
	ListAllOrders(ctx context.Context, pagination util.PaginationArgs) ([]models.OrderWithStore, int64, error)
	ListSellerOrders(ctx context.Context, sellerID primitive.ObjectID) ([]models.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error
}
