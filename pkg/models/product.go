package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	SellerID    primitive.ObjectID `bson:"seller_id" json:"sellerId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"image_url" json:"imageUrl"`
	// Cloudinary public id, kept so a delete can also drop the asset.
	ImagePublicID string        `bson:"image_public_id,omitempty" json:"-"`
	Status        ProductStatus `bson:"status" json:"status"`
	SoldCount     int           `bson:"sold_count" json:"soldCount"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}

// ProductWithSeller is a Product with the owning seller's storefront
// profile joined in for public listings.
type ProductWithSeller struct {
	Product `bson:",inline"`
	Seller  SellerPublic `bson:"seller" json:"seller"`
}

// UpdateProductRequest patches only the fields present in the payload.
type UpdateProductRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int           `json:"quantity" validate:"omitempty,gte=0"`
	Category    *string        `json:"category"`
	Status      *ProductStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}
