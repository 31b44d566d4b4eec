package request

// PayerIdentification is the payer document block required by Mercado Pago
// (e.g. type "CPF" plus the document number).
type PayerIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type Payer struct {
	Email          string               `json:"email"`
	Identification *PayerIdentification `json:"identification"`
}

// CardPaymentRequest is the payload for the synchronous card-payment route.
//
// All fields except issuer_id are mandatory. Validation enumerates every
// missing field instead of failing on the first one, so the front end can
// show a complete message; the names below are part of the API contract.
type CardPaymentRequest struct {
	Token             string  `json:"token"`
	PaymentMethodID   string  `json:"payment_method_id"`
	IssuerID          string  `json:"issuer_id"`
	TransactionAmount float64 `json:"transaction_amount"`
	Installments      int     `json:"installments"`
	Description       string  `json:"description"`
	AnalysisID        string  `json:"analysisId"`
	Payer             *Payer  `json:"payer"`
}

// MissingFields returns the names of every absent required field, in a
// stable order.
func (r CardPaymentRequest) MissingFields() []string {
	var missing []string
	if r.Token == "" {
		missing = append(missing, "token")
	}
	if r.PaymentMethodID == "" {
		missing = append(missing, "payment_method_id")
	}
	if r.TransactionAmount == 0 {
		missing = append(missing, "transaction_amount")
	}
	if r.Installments == 0 {
		missing = append(missing, "installments")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if r.AnalysisID == "" {
		missing = append(missing, "analysisId")
	}
	missing = append(missing, missingPayerFields(r.Payer)...)
	return missing
}

func missingPayerFields(p *Payer) []string {
	if p == nil {
		return []string{"payer object"}
	}
	var missing []string
	if p.Email == "" {
		missing = append(missing, "payer.email")
	}
	if p.Identification == nil {
		missing = append(missing, "payer.identification object")
		return missing
	}
	if p.Identification.Type == "" {
		missing = append(missing, "payer.identification.type")
	}
	if p.Identification.Number == "" {
		missing = append(missing, "payer.identification.number")
	}
	return missing
}
