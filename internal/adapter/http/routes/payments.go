package routes

import (
	"net/http"

	"analysis_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/card", paymentHandler.CreateCardPayment)
		payments.POST("/pix", paymentHandler.CreatePixPayment)
		payments.GET("/status/:analysis_id", paymentHandler.GetPaymentStatus)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Mercado Pago only speaks POST here; other methods get 405
		// from the router.
		webhooks.POST("/mercadopago", webhookHandler.HandlePixWebhook)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
