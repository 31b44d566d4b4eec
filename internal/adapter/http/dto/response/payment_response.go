package response

import "analysis_billing/internal/domain/entities"

// CardPaymentResponse mirrors the gateway outcome back to the client.
// Success follows gateway approval, not just a 2xx create call.
type CardPaymentResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Detail    string `json:"detail"`
	PaymentID int64  `json:"paymentId"`
	Message   string `json:"message"`
}

// PixPaymentResponse adds the QR payload the client renders while polling
// for the out-of-band confirmation.
type PixPaymentResponse struct {
	Success      bool   `json:"success"`
	Status       string `json:"status"`
	Detail       string `json:"detail"`
	PaymentID    int64  `json:"paymentId"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	ExpiresAt    string `json:"expiration_date,omitempty"`
}

// PaymentStatusResponse backs the polling endpoint used while a Pix QR is
// pending confirmation.
type PaymentStatusResponse struct {
	AnalysisID        string `json:"analysisId"`
	PaymentStatus     string `json:"paymentStatus"`
	PaymentDetail     string `json:"paymentDetail"`
	IsPremiumAnalysis bool   `json:"isPremiumAnalysis"`
}

func FromAnalysisRecord(rec entities.AnalysisRecord) PaymentStatusResponse {
	return PaymentStatusResponse{
		AnalysisID:        rec.ID,
		PaymentStatus:     rec.PaymentStatus,
		PaymentDetail:     rec.PaymentDetail,
		IsPremiumAnalysis: rec.IsPremiumAnalysis,
	}
}

// ErrorResponse is the error body contract for the client-facing routes.
// MPStatus/MPStatusDetail carry the gateway's own diagnosis when the error
// originated there.
type ErrorResponse struct {
	Error          string   `json:"error"`
	MissingFields  []string `json:"missingFields,omitempty"`
	MPStatus       string   `json:"mp_status,omitempty"`
	MPStatusDetail string   `json:"mp_status_detail,omitempty"`
}
