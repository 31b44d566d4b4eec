package request

import (
	"encoding/json"
	"testing"
)

func TestWebhookNotification_Unmarshal(t *testing.T) {
	t.Run("numeric data id", func(t *testing.T) {
		var n WebhookNotification
		if err := json.Unmarshal([]byte(`{"type":"payment","action":"payment.updated","data":{"id":123456}}`), &n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Data.ID.String() != "123456" {
			t.Fatalf("expected data id 123456, got %q", n.Data.ID)
		}
	})

	t.Run("string data id", func(t *testing.T) {
		var n WebhookNotification
		if err := json.Unmarshal([]byte(`{"type":"payment","data":{"id":"123456"}}`), &n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Data.ID.String() != "123456" {
			t.Fatalf("expected data id 123456, got %q", n.Data.ID)
		}
	})

	t.Run("null data id is tolerated", func(t *testing.T) {
		var n WebhookNotification
		if err := json.Unmarshal([]byte(`{"type":"payment","data":{"id":null}}`), &n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Data.ID.String() != "" {
			t.Fatalf("expected empty data id, got %q", n.Data.ID)
		}
	})
}

func TestWebhookNotification_IsPaymentTopic(t *testing.T) {
	if (WebhookNotification{Type: "merchant_order"}).IsPaymentTopic() {
		t.Fatal("merchant_order should not be a payment topic")
	}
	if !(WebhookNotification{Type: "payment"}).IsPaymentTopic() {
		t.Fatal("payment should be a payment topic")
	}
}

func TestWebhookNotification_PaymentID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantID int64
		wantOK bool
	}{
		{"numeric", "123456", 123456, true},
		{"padded", " 123456 ", 123456, true},
		{"empty", "", 0, false},
		{"alphanumeric", "abc123", 0, false},
		{"zero", "0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n WebhookNotification
			n.Type = "payment"
			n.Data.ID = NotificationID(tt.id)
			id, ok := n.PaymentID()
			if ok != tt.wantOK || id != tt.wantID {
				t.Fatalf("PaymentID() = (%d, %v), expected (%d, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
