package entities

// PaymentStatus mirrors the status strings reported by Mercado Pago.
//
// The gateway owns this vocabulary; we only give names to the values the
// service branches on. Anything else is stored verbatim.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusInProcess PaymentStatus = "in_process"
)

// AnalysisRecord is the persisted document representing a user's report,
// extended with the payment/premium-unlock fields this service manages.
//
// Storage model (DynamoDB):
//   - PK: id (the externally assigned analysis id)
//   - GSI payment_id-index (PK: payment_id): at most one record per
//     gateway payment id; the webhook reconciliation depends on that.
//
// IsPremiumAnalysis is monotonic: this service only ever flips it to true.

type AnalysisRecord struct {
	ID                string `json:"id"`
	PaymentStatus     string `json:"paymentStatus"`
	PaymentDetail     string `json:"paymentDetail"`
	PaymentID         int64  `json:"paymentId"`
	PaymentMethod     string `json:"paymentMethod,omitempty"`
	IsPremiumAnalysis bool   `json:"isPremiumAnalysis"`
}

// PaymentUpdate carries the fields an upsert is allowed to touch.
//
// MarkPremium is a one-way switch: when false the premium flag is left
// untouched, never written back to false.
type PaymentUpdate struct {
	PaymentStatus string
	PaymentDetail string
	PaymentID     int64
	PaymentMethod string
	MarkPremium   bool
}

// PremiumUnlockedEvent is published (best effort) whenever a payment is
// confirmed approved, either synchronously (card) or via webhook (Pix).
type PremiumUnlockedEvent struct {
	AnalysisID    string `json:"analysis_id"`
	PaymentID     int64  `json:"payment_id"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	StatusDetail  string `json:"status_detail"`
	Source        string `json:"source"`
}
