package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Holotrica/stripe-backend/models"
	"github.com/Holotrica/stripe-backend/services"
	"github.com/gin-gonic/gin"
)

// CheckoutController handles HTTP requests for checkout session creation.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// CreateCheckoutSession handles POST /api/create-checkout-session
func (cc *CheckoutController) CreateCheckoutSession(ctx *gin.Context) {
	var req models.CheckoutRequest
	// An empty body is an empty cart, not a malformed request.
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	resp, svcErr := cc.checkoutService.CreateCheckoutSession(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
