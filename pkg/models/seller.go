package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessType string

const (
	BusinessTypeIndividual    BusinessType = "individual"
	BusinessTypeSmallBusiness BusinessType = "small_business"
	BusinessTypeCorporation   BusinessType = "corporation"
)

type SellerAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zip_code" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

type IDDocument struct {
	FileName   string    `bson:"file_name" json:"fileName"`
	UploadDate time.Time `bson:"upload_date" json:"uploadDate"`
	Verified   bool      `bson:"verified" json:"verified"`
}

type Seller struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	FullName string             `bson:"full_name" json:"fullName"`
	Email    string             `bson:"email" json:"email"`
	// Password never leaves the server. The json tag is "-" on purpose.
	Password     string        `bson:"password" json:"-"`
	Phone        string        `bson:"phone" json:"phone"`
	StoreName    string        `bson:"store_name" json:"storeName"`
	StoreSlug    string        `bson:"store_slug" json:"storeSlug"`
	BusinessType BusinessType  `bson:"business_type" json:"businessType"`
	Address      SellerAddress `bson:"address" json:"address"`
	TaxID        string        `bson:"tax_id" json:"taxId,omitempty"`
	BankAccount  string        `bson:"bank_account" json:"bankAccount,omitempty"`
	IDDocument   IDDocument    `bson:"id_document" json:"idDocument"`

	IsVerified bool       `bson:"is_verified" json:"isVerified"`
	VerifiedAt *time.Time `bson:"verified_at,omitempty" json:"verifiedAt,omitempty"`
	Rating     float64    `bson:"rating" json:"rating"`

	TotalSales    float64 `bson:"total_sales" json:"totalSales"`
	TotalOrders   int     `bson:"total_orders" json:"totalOrders"`
	TotalProducts int     `bson:"total_products" json:"totalProducts"`
	TotalReviews  int     `bson:"total_reviews" json:"totalReviews"`

	IsActive        bool       `bson:"is_active" json:"isActive"`
	SuspendedReason string     `bson:"suspended_reason,omitempty" json:"suspendedReason,omitempty"`
	SuspendedAt     *time.Time `bson:"suspended_at,omitempty" json:"suspendedAt,omitempty"`

	ResetToken        string     `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpires *time.Time `bson:"reset_token_expires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// SellerPublic is the storefront-facing projection of a Seller. The
// sensitive fields (password digest, bank account, tax id, id document)
// are simply absent from the struct.
type SellerPublic struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	FullName     string             `bson:"full_name" json:"fullName"`
	StoreName    string             `bson:"store_name" json:"storeName"`
	StoreSlug    string             `bson:"store_slug" json:"storeSlug"`
	BusinessType BusinessType       `bson:"business_type" json:"businessType"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      SellerAddress      `bson:"address" json:"address"`
	IsVerified   bool               `bson:"is_verified" json:"isVerified"`
	Rating       float64            `bson:"rating" json:"rating"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// Public strips a Seller down to its storefront projection.
func (s Seller) Public() SellerPublic {
	return SellerPublic{
		ID:           s.ID,
		FullName:     s.FullName,
		StoreName:    s.StoreName,
		StoreSlug:    s.StoreSlug,
		BusinessType: s.BusinessType,
		Phone:        s.Phone,
		Address:      s.Address,
		IsVerified:   s.IsVerified,
		Rating:       s.Rating,
		CreatedAt:    s.CreatedAt,
	}
}

// Sanitized clears credential and banking fields for API responses that
// return the caller's own account.
func (s Seller) Sanitized() Seller {
	s.Password = ""
	s.ResetToken = ""
	s.ResetTokenExpires = nil
	return s
}

type RegisterSellerRequest struct {
	FullName     string        `json:"fullName" validate:"required"`
	Email        string        `json:"email" validate:"required,email"`
	Password     string        `json:"password" validate:"required,min=8"`
	Phone        string        `json:"phone" validate:"required"`
	StoreName    string        `json:"storeName" validate:"required"`
	BusinessType BusinessType  `json:"businessType" validate:"required,oneof=individual small_business corporation"`
	Address      SellerAddress `json:"address"`
	TaxID        string        `json:"taxId" validate:"required"`
	BankAccount  string        `json:"bankAccount" validate:"required"`
	IDDocument   string        `json:"idDocument"`
}

type SellerLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateSellerRequest struct {
	StoreName    string         `json:"storeName"`
	BusinessType BusinessType   `json:"businessType" validate:"omitempty,oneof=individual small_business corporation"`
	Address      *SellerAddress `json:"address"`
	Phone        string         `json:"phone"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
