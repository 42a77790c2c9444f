package controllers

import (
	"net/http"

	"blackcart-io/api/internal/auth"
	"blackcart-io/api/internal/common"
	"blackcart-io/api/pkg/models"
	"blackcart-io/api/pkg/services"
	"blackcart-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerAuthController handles registration, sessions and the password
// reset flow.
type SellerAuthController struct {
	sellerService services.SellerService
}

func InitSellerAuthController(sellerService services.SellerService) *SellerAuthController {
	return &SellerAuthController{sellerService: sellerService}
}

// Register creates a seller account and opens a session in one call.
// POST /api/seller-auth/register
func (sc *SellerAuthController) Register(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.RegisterSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	seller, err := sc.sellerService.Register(ctx, req)
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	token, expiresAt, err := auth.GenerateJWT(seller.ID.Hex(), seller.Email, seller.StoreSlug)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Seller registered successfully", gin.H{
		"seller":    seller.Sanitized(),
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Login authenticates an email/password pair and issues a bearer token.
// POST /api/seller-auth/login
func (sc *SellerAuthController) Login(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.SellerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	seller, err := sc.sellerService.Authenticate(ctx, req)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	// Accounts from before slug generation get one on first login.
	if err := sc.sellerService.EnsureStoreSlug(ctx, seller); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	token, expiresAt, err := auth.GenerateJWT(seller.ID.Hex(), seller.Email, seller.StoreSlug)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Login successful", gin.H{
		"seller":    seller.Sanitized(),
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Profile returns the authenticated seller's own account.
// GET /api/seller-auth/profile
func (sc *SellerAuthController) Profile(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	seller, err := sc.sellerService.GetSellerByID(ctx, sellerID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	if err := sc.sellerService.EnsureStoreSlug(ctx, seller); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller profile", seller.Sanitized())
}

// Logout revokes the presented token for the rest of its lifetime.
// DELETE /api/seller-auth/logout
func (sc *SellerAuthController) Logout(c *gin.Context) {
	tokenString, err := auth.ExtractSessionKey(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	if err := auth.InvalidateToken(util.REDIS, tokenString); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// ForgotPassword starts the reset flow. The response is the same whether
// or not the email belongs to an account.
// POST /api/seller-auth/forgot-password
func (sc *SellerAuthController) ForgotPassword(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.sellerService.BeginPasswordReset(ctx, req.Email); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "If that email is registered, a reset link has been sent", nil)
}

// ResetPassword finishes the reset flow with the emailed token.
// POST /api/seller-auth/reset-password
func (sc *SellerAuthController) ResetPassword(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.sellerService.CompletePasswordReset(ctx, req.Token, req.Password); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Password has been reset", nil)
}

// Verify marks a seller's identity document as checked.
// POST /api/seller-auth/verify/:sellerId
func (sc *SellerAuthController) Verify(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, err := primitive.ObjectIDFromHex(c.Param("sellerId"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	seller, err := sc.sellerService.VerifySeller(ctx, sellerID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller verified", seller.Sanitized())
}
