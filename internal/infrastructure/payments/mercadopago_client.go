package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"analysis_billing/internal/domain/entities"
	"analysis_billing/internal/logger"
	"analysis_billing/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBaseURL        = "https://api.mercadopago.com"
	defaultGatewayTimeout = 30 * time.Second

	defaultGatewayErrorMessage = "Falha ao processar o pagamento com Mercado Pago."
)

// mpErrorBody is the error envelope Mercado Pago returns on non-2xx
// answers. Status arrives as a number on some endpoints and a string on
// others.
type mpErrorBody struct {
	Message      string      `json:"message"`
	Error        string      `json:"error"`
	Status       json.Number `json:"status"`
	StatusDetail string      `json:"status_detail"`
}

// MercadoPagoClient talks to the Mercado Pago payments API over plain
// HTTP. Each create call carries a freshly generated X-Idempotency-Key;
// the token is random rather than derived from the request, matching the
// gateway contract for distinct charge attempts.
type MercadoPagoClient struct {
	http        *resty.Client
	accessToken string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoClient)(nil)

func NewMercadoPagoClient(accessToken string) *MercadoPagoClient {
	baseURL := os.Getenv("MERCADOPAGO_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultGatewayTimeout).
		SetHeader("Content-Type", "application/json")

	return &MercadoPagoClient{
		http:        client,
		accessToken: strings.TrimSpace(accessToken),
	}
}

func (c *MercadoPagoClient) CreatePayment(ctx context.Context, req entities.GatewayPaymentRequest) (entities.GatewayPayment, error) {
	if c.accessToken == "" {
		return entities.GatewayPayment{}, entities.ErrGatewayNotConfigured
	}

	idempotencyKey := uuid.NewString()

	var payment entities.GatewayPayment
	var apiErr mpErrorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.accessToken).
		SetHeader("X-Idempotency-Key", idempotencyKey).
		SetBody(req).
		SetResult(&payment).
		SetError(&apiErr).
		Post("/v1/payments")
	if err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("mercado pago create payment: %w", err)
	}

	if resp.IsError() {
		logger.Warn("mercado pago rejected create payment",
			zap.Int("gateway_status", resp.StatusCode()),
			zap.String("gateway_message", apiErr.Message),
		)
		return entities.GatewayPayment{}, gatewayError(resp.StatusCode(), apiErr)
	}

	logger.Info("mercado pago payment created",
		zap.Int64("payment_id", payment.ID),
		zap.String("status", payment.Status),
		zap.String("idempotency_key", idempotencyKey),
	)
	return payment, nil
}

func (c *MercadoPagoClient) GetPaymentByID(ctx context.Context, paymentID int64) (entities.GatewayPayment, error) {
	if c.accessToken == "" {
		return entities.GatewayPayment{}, entities.ErrGatewayNotConfigured
	}

	var payment entities.GatewayPayment
	var apiErr mpErrorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.accessToken).
		SetResult(&payment).
		SetError(&apiErr).
		Get(fmt.Sprintf("/v1/payments/%d", paymentID))
	if err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("mercado pago get payment %d: %w", paymentID, err)
	}

	if resp.IsError() {
		return entities.GatewayPayment{}, gatewayError(resp.StatusCode(), apiErr)
	}

	return payment, nil
}

func gatewayError(statusCode int, body mpErrorBody) *entities.GatewayError {
	message := body.Message
	if message == "" {
		message = defaultGatewayErrorMessage
	}
	return &entities.GatewayError{
		StatusCode:   statusCode,
		Message:      message,
		Status:       body.Status.String(),
		StatusDetail: body.StatusDetail,
	}
}
