package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"blackcart-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth gates seller-only routes: bearer token present, signed, unexpired
// and not blacklisted.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := ExtractSessionKey(c)
		if err != nil {
			util.HandleError(c, 401, errors.New("request does not contain an access token"))
			c.Abort()
			return
		}
		_, err = ValidateToken(tokenString)
		if err != nil {
			util.HandleError(c, 401, err)
			c.Abort()
			return
		}

		if !IsTokenValid(util.REDIS, tokenString) {
			util.HandleError(c, 401, errors.New("token has been revoked, please login again"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GenerateSecureToken makes a hex token for password reset links.
func GenerateSecureToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return ""
	}

	return hex.EncodeToString(b)
}

// ValidateSellerID returns the authenticated seller's object id from the
// request token.
func ValidateSellerID(c *gin.Context) (primitive.ObjectID, error) {
	claim, err := InitJwtClaim(c)
	if err != nil {
		errMsg := fmt.Sprintf("unauthorized: seller ID not found in authentication token - %v", err.Error())
		return primitive.NilObjectID, errors.New(errMsg)
	}

	return claim.GetSellerObjectId()
}

// InvalidateToken blacklists a token for the remainder of its lifetime.
func InvalidateToken(db *redis.Client, tokenString string) error {
	_, err := db.Set(context.Background(), tokenString, true, TokenExpirationTime).Result()
	if err != nil {
		return err
	}

	return nil
}

// IsTokenValid checks the token against the blacklist.
func IsTokenValid(db *redis.Client, tokenString string) bool {
	_, err := db.Get(context.Background(), tokenString).Result()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		log.Printf("Error while checking blacklist: %s", err)
		return false
	}

	// Token is in the blacklist, so it's invalid
	return false
}

// ExtractSessionKey extracts the bearer token from the request header.
func ExtractSessionKey(c *gin.Context) (string, error) {
	return ExtractBearerToken(c.Request.Header.Get("Authorization"))
}

// ExtractBearerToken extracts the Bearer token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is empty")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fmt.Errorf("authorization header does not start with 'Bearer '")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", fmt.Errorf("token is empty")
	}

	return token, nil
}
