package entities

import (
	"errors"
	"fmt"
)

// ErrGatewayNotConfigured is returned by the gateway client when the
// Mercado Pago access token is absent. It is a deployment problem, not a
// request problem: client-facing routes answer 500, the webhook route
// still answers 200.
var ErrGatewayNotConfigured = errors.New("mercado pago access token not configured")

// GatewayPaymentRequest is the payload sent to the Mercado Pago
// create-payment API (POST /v1/payments). JSON tags match the wire names.
//
// Card payments carry Token/Installments/PaymentMethodID; Pix fixes
// PaymentMethodID to "pix" and omits the card-only fields.
type GatewayPaymentRequest struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Token             string       `json:"token,omitempty"`
	Description       string       `json:"description"`
	Installments      int          `json:"installments,omitempty"`
	PaymentMethodID   string       `json:"payment_method_id"`
	IssuerID          string       `json:"issuer_id,omitempty"`
	Payer             GatewayPayer `json:"payer"`
}

type GatewayPayer struct {
	Email          string                `json:"email"`
	Identification GatewayIdentification `json:"identification"`
}

type GatewayIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// GatewayPayment is the subset of the Mercado Pago payment resource this
// service consumes, for both create-payment and fetch-by-id responses.
type GatewayPayment struct {
	ID                 int64               `json:"id"`
	Status             string              `json:"status"`
	StatusDetail       string              `json:"status_detail"`
	PointOfInteraction *PointOfInteraction `json:"point_of_interaction,omitempty"`
}

// PixTransactionData returns the QR block of a Pix payment, or nil when the
// gateway response carries none.
func (p GatewayPayment) PixTransactionData() *PixTransactionData {
	if p.PointOfInteraction == nil {
		return nil
	}
	return p.PointOfInteraction.TransactionData
}

func (p GatewayPayment) IsApproved() bool {
	return p.Status == string(PaymentStatusApproved)
}

type PointOfInteraction struct {
	TransactionData *PixTransactionData `json:"transaction_data,omitempty"`
}

type PixTransactionData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	ExpirationAt string `json:"date_of_expiration,omitempty"`
}

// GatewayError is a non-2xx answer from the payment gateway. StatusCode is
// the gateway's own HTTP status; callers map it onto the client response
// (502 for gateway 5xx, 400 otherwise).
type GatewayError struct {
	StatusCode   int
	Message      string
	Status       string
	StatusDetail string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (http %d): %s", e.StatusCode, e.Message)
}

// IsServerError reports whether the gateway itself failed, as opposed to
// rejecting the request.
func (e *GatewayError) IsServerError() bool {
	return e.StatusCode >= 500
}
