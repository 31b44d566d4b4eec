package request

// PixPaymentRequest is the payload for the asynchronous Pix route. The
// payment method is fixed server-side; there is no card token and no
// installment count.
type PixPaymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	AnalysisID        string  `json:"analysisId"`
	Payer             *Payer  `json:"payer"`
}

func (r PixPaymentRequest) MissingFields() []string {
	var missing []string
	if r.TransactionAmount == 0 {
		missing = append(missing, "transaction_amount")
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
