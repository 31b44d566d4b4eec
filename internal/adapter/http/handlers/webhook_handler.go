package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	request "analysis_billing/internal/adapter/http/dto/request"
	"analysis_billing/internal/infrastructure/payments"
	"analysis_billing/internal/logger"
	"analysis_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const webhookSecretEnv = "MERCADO_PAGO_WEBHOOK_SECRET"

// WebhookHandler receives Mercado Pago payment notifications.
//
// Response contract: the gateway retries any non-2xx answer, so every
// internal or transient failure still resolves to 200 with a diagnostic
// body. The only rejections are 403 (invalid signature), 405 (non-POST,
// enforced by the router) and 400 (unparsable body after the signature
// already checked out).

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePixWebhook godoc
// @Summary      Receber notificação do Mercado Pago
// @Description  Valida a assinatura HMAC, rebusca o status do pagamento e libera a análise premium quando aprovado
// @Tags         webhooks
// @Accept       json
// @Produce      plain
// @Param        x-signature   header  string  true   "ts=...,v1=..."
// @Param        x-request-id  header  string  false  "ID da entrega"
// @Success      200  {string}  string  "OK"
// @Failure      400  {string}  string  "Bad Request"
// @Failure      403  {string}  string  "Forbidden"
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) HandlePixWebhook(c *gin.Context) {
	// The exact bytes on the wire feed the HMAC; a re-serialized body
	// would not verify.
	raw, err := c.GetRawData()
	if err != nil {
		logger.Error("webhook raw body unavailable for signature validation", zap.Error(err))
		c.String(http.StatusOK, "OK - Internal configuration error: Raw body needed for validation.")
		return
	}

	secret := os.Getenv(webhookSecretEnv)
	if secret == "" {
		logger.Error("webhook secret not configured", zap.String("env", webhookSecretEnv))
		c.String(http.StatusOK, "OK - Internal Server Configuration Error")
		return
	}

	if !payments.VerifyWebhookSignature(c.GetHeader("x-signature"), c.GetHeader("x-request-id"), raw, secret) {
		logger.Warn("webhook signature validation failed",
			zap.String("request_id", c.GetHeader("x-request-id")),
		)
		c.String(http.StatusForbidden, "Forbidden: Invalid signature")
		return
	}

	var notification request.WebhookNotification
	if err := json.Unmarshal(raw, &notification); err != nil {
		logger.Error("webhook body unparsable after signature validation", zap.Error(err))
		c.String(http.StatusBadRequest, "Bad Request: Invalid JSON body.")
		return
	}

	outcome := h.usecase.ProcessPaymentNotification(c.Request.Context(), notification)
	c.String(http.StatusOK, webhookResponseBody(outcome))
}

func webhookResponseBody(outcome usecase.WebhookOutcome) string {
	switch outcome {
	case usecase.OutcomeFetchFailed:
		return "OK - Failed to fetch payment details"
	case usecase.OutcomePersistFailed:
		return "OK - Internal error occurred"
	default:
		return "OK"
	}
}
