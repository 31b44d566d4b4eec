package request

import (
	"reflect"
	"testing"
)

func validCardRequest() CardPaymentRequest {
	return CardPaymentRequest{
		Token:             "tok-1",
		PaymentMethodID:   "visa",
		TransactionAmount: 49.9,
		Installments:      1,
		Description:       "Análise Premium",
		AnalysisID:        "analysis-1",
		Payer: &Payer{
			Email: "payer@test.com",
			Identification: &PayerIdentification{
				Type:   "CPF",
				Number: "12345678909",
			},
		},
	}
}

func TestCardPaymentRequest_MissingFields(t *testing.T) {
	t.Run("complete request", func(t *testing.T) {
		if missing := validCardRequest().MissingFields(); len(missing) != 0 {
			t.Fatalf("expected no missing fields, got %v", missing)
		}
	})

	t.Run("issuer id is optional", func(t *testing.T) {
		req := validCardRequest()
		req.IssuerID = ""
		if missing := req.MissingFields(); len(missing) != 0 {
			t.Fatalf("expected no missing fields, got %v", missing)
		}
	})

	t.Run("empty request lists every field in order", func(t *testing.T) {
		missing := CardPaymentRequest{}.MissingFields()
		want := []string{"token", "payment_method_id", "transaction_amount", "installments", "description", "analysisId", "payer object"}
		if !reflect.DeepEqual(missing, want) {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	})

	t.Run("missing payer email and identification fields", func(t *testing.T) {
		req := validCardRequest()
		req.Payer.Email = ""
		req.Payer.Identification.Type = ""
		req.Payer.Identification.Number = ""
		want := []string{"payer.email", "payer.identification.type", "payer.identification.number"}
		if missing := req.MissingFields(); !reflect.DeepEqual(missing, want) {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	})

	t.Run("missing identification object stops the drill-down", func(t *testing.T) {
		req := validCardRequest()
		req.Payer.Identification = nil
		want := []string{"payer.identification object"}
		if missing := req.MissingFields(); !reflect.DeepEqual(missing, want) {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	})

	t.Run("zero amount counts as missing", func(t *testing.T) {
		req := validCardRequest()
		req.TransactionAmount = 0
		req.Installments = 0
		want := []string{"transaction_amount", "installments"}
		if missing := req.MissingFields(); !reflect.DeepEqual(missing, want) {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	})
}

func TestPixPaymentRequest_MissingFields(t *testing.T) {
	t.Run("complete request", func(t *testing.T) {
		req := PixPaymentRequest{
			TransactionAmount: 49.9,
			Description:       "Análise Premium",
			AnalysisID:        "analysis-1",
			Payer: &Payer{
				Email:          "payer@test.com",
				Identification: &PayerIdentification{Type: "CPF", Number: "12345678909"},
			},
		}
		if missing := req.MissingFields(); len(missing) != 0 {
			t.Fatalf("expected no missing fields, got %v", missing)
		}
	})

	t.Run("empty request lists every field in order", func(t *testing.T) {
		missing := PixPaymentRequest{}.MissingFields()
		want := []string{"transaction_amount", "description", "analysisId", "payer object"}
		if !reflect.DeepEqual(missing, want) {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	})
}
