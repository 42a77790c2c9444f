package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleSeller() Seller {
	now := time.Now()
	return Seller{
		ID:           primitive.NewObjectID(),
		FullName:     "Adi Shan",
		Email:        "adi@example.com",
		Password:     "$2a$14$somebcrypthash",
		Phone:        "+1-555-0100",
		StoreName:    "Adi Shan",
		StoreSlug:    "adi-shan",
		BusinessType: BusinessTypeIndividual,
		TaxID:        "TAX-123",
		BankAccount:  "0001112223",
		IDDocument: IDDocument{
			FileName:   "passport.pdf",
			UploadDate: now,
		},
		ResetToken: "secret-reset-token",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestSellerPublicProjection(t *testing.T) {
	seller := sampleSeller()
	public := seller.Public()

	assert.Equal(t, seller.ID, public.ID)
	assert.Equal(t, "adi-shan", public.StoreSlug)

	// The sensitive fields must not survive serialization of the public
	// projection.
	raw, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt")
	assert.NotContains(t, string(raw), "TAX-123")
	assert.NotContains(t, string(raw), "0001112223")
	assert.NotContains(t, string(raw), "passport.pdf")
}

func TestSellerSanitized(t *testing.T) {
	seller := sampleSeller()
	sanitized := seller.Sanitized()

	assert.Empty(t, sanitized.Password)
	assert.Empty(t, sanitized.ResetToken)
	assert.Nil(t, sanitized.ResetTokenExpires)

	// The account's own view keeps business fields.
	assert.Equal(t, "TAX-123", sanitized.TaxID)
}

func TestSellerJSONNeverLeaksCredentials(t *testing.T) {
	seller := sampleSeller()

	raw, err := json.Marshal(seller)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt")
	assert.NotContains(t, string(raw), "secret-reset-token")
}
