package auth

import (
	"errors"
	"time"

	"blackcart-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tokens carry an enforced expiry; a decoded-but-stale token is rejected
// at validation time.
const TokenExpirationTime = 24 * time.Hour

type JWTClaim struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	StoreSlug string `json:"store_slug"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a token for a new seller session.
func GenerateJWT(id, email, storeSlug string) (string, int64, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)
	jwtKey := util.LoadEnvFor("SECRET")

	claims := JWTClaim{
		Id:        id,
		Email:     email,
		StoreSlug: storeSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken checks a signed token's signature and expiration time.
func ValidateToken(signedToken string) (JWTClaim, error) {
	jwtKey := util.LoadEnvFor("SECRET")
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtKey), nil
		},
	)
	if err != nil {
		return JWTClaim{}, err
	}

	claim, ok := token.Claims.(*JWTClaim)
	if !ok {
		return JWTClaim{}, errors.New("couldn't parse claims")
	}

	exp, _ := claim.GetExpirationTime()
	if exp == nil || exp.Unix() < time.Now().Unix() {
		return JWTClaim{}, errors.New("token expired")
	}

	return *claim, nil
}

// InitJwtClaim extracts and validates the jwt auth token on a request.
func InitJwtClaim(c *gin.Context) (JWTClaim, error) {
	tknStr, err := ExtractSessionKey(c)
	if err != nil {
		return JWTClaim{}, err
	}

	token, err := ValidateToken(tknStr)
	if err != nil {
		return JWTClaim{}, err
	}

	return token, nil
}

// GetSellerObjectId resolves the claim's seller id.
func (j JWTClaim) GetSellerObjectId() (primitive.ObjectID, error) {
	sellerId, err := primitive.ObjectIDFromHex(j.Id)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return sellerId, nil
}
