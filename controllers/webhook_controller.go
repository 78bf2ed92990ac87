package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Holotrica/stripe-backend/models"
	"github.com/Holotrica/stripe-backend/services"
	"github.com/gin-gonic/gin"
)

// WebhookController receives payment processor notifications.
type WebhookController struct {
	webhookService services.WebhookService
}

func NewWebhookController(svc services.WebhookService) *WebhookController {
	return &WebhookController{webhookService: svc}
}

// HandleWebhook handles POST /webhook
func (wc *WebhookController) HandleWebhook(ctx *gin.Context) {
	var event models.NotificationEvent
	// An empty body decodes as an event with no type and is acknowledged.
	if err := ctx.ShouldBindJSON(&event); err != nil && !errors.Is(err, io.EOF) {
		ctx.String(http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if svcErr := wc.webhookService.HandleEvent(ctx.Request.Context(), &event); svcErr != nil {
		ctx.String(svcErr.StatusCode, svcErr.Message)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"received": true})
}
