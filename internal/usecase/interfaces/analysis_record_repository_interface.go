package interfaces

import (
	"context"

	"analysis_billing/internal/domain/entities"
)

//go:generate mockgen -source=analysis_record_repository_interface.go -destination=mocks/mock_analysis_record_repository.go -package=mock_interfaces

// IAnalysisRecordRepository abstracts DynamoDB persistence for AnalysisRecord.
//
// UpsertPaymentFields uses merge semantics (create-or-update): the Pix flow
// may write payment fields before the record has any, and the webhook flow
// re-applies the same final values on replayed deliveries. The update never
// clears the premium flag.

type IAnalysisRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.AnalysisRecord, error)
	UpsertPaymentFields(ctx context.Context, analysisID string, update entities.PaymentUpdate) error
	FindByPaymentID(ctx context.Context, paymentID int64) (entities.AnalysisRecord, error)
}
