package routes

import (
	"net/http"

	"github.com/Holotrica/stripe-backend/controllers"
	"github.com/gin-gonic/gin"
)

const serviceName = "stripe-backend"

// RegisterRoutes sets up the checkout, webhook and health routes.
func RegisterRoutes(r *gin.Engine, cc *controllers.CheckoutController, wc *controllers.WebhookController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})

	api := r.Group("/api")
	api.POST("/create-checkout-session", cc.CreateCheckoutSession)

	// Processor notifications (no auth, no signature check)
	r.POST("/webhook", wc.HandleWebhook)
}
