package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NotificationID tolerates the two shapes Mercado Pago uses for data.id: a
// JSON string (sometimes alphanumeric) or a bare number.
type NotificationID string

func (id *NotificationID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = NotificationID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = NotificationID(n.String())
		return nil
	}
	// Unexpected shapes (null, objects) leave the id empty; the
	// notification is then acknowledged and ignored downstream.
	return nil
}

func (id NotificationID) String() string { return string(id) }

// WebhookNotification is the body of a Mercado Pago webhook delivery.
type WebhookNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID NotificationID `json:"id"`
	} `json:"data"`
}

// IsPaymentTopic reports whether this notification is about a payment.
// Other topics (merchant_order, chargebacks, ...) are acknowledged but
// ignored.
func (n WebhookNotification) IsPaymentTopic() bool {
	return n.Type == "payment"
}

// PaymentID returns the numeric gateway payment id carried by the
// notification, or false when data.id is absent or not numeric.
func (n WebhookNotification) PaymentID() (int64, bool) {
	raw := strings.TrimSpace(n.Data.ID.String())
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
