package interfaces

import (
	"context"

	"analysis_billing/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePayment attaches a fresh idempotency token to each call. A non-2xx
// provider answer surfaces as *entities.GatewayError so callers can map the
// provider's HTTP status; transport failures surface as plain errors.
//
// GetPaymentByID is the canonical status source for webhook reconciliation:
// the notification body's own status field is never trusted.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.GatewayPaymentRequest) (entities.GatewayPayment, error)
	GetPaymentByID(ctx context.Context, paymentID int64) (entities.GatewayPayment, error)
}
