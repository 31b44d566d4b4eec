package usecase

import (
	"context"
	"fmt"
	"strings"

	"analysis_billing/internal/adapter/http/dto/request"
	"analysis_billing/internal/domain/entities"
	"analysis_billing/internal/logger"
	"analysis_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const pixPaymentMethodID = "pix"

// CardPaymentResult is the outcome of a synchronous card payment. Approved
// mirrors the gateway's decision; Message is the human-readable summary
// returned to the client.
type CardPaymentResult struct {
	Approved     bool
	Status       string
	StatusDetail string
	PaymentID    int64
	Message      string
}

// PixPaymentResult carries the QR payload the client needs to complete the
// transfer. The terminal status arrives later through the webhook.
type PixPaymentResult struct {
	Status       string
	StatusDetail string
	PaymentID    int64
	QRCode       string
	QRCodeBase64 string
	ExpiresAt    string
}

// IPaymentUseCase is the payment initiation boundary consumed by the HTTP
// handlers.

type IPaymentUseCase interface {
	CreateCardPayment(ctx context.Context, req request.CardPaymentRequest) (CardPaymentResult, error)
	CreatePixPayment(ctx context.Context, req request.PixPaymentRequest) (PixPaymentResult, error)
	GetPaymentStatus(ctx context.Context, analysisID string) (entities.AnalysisRecord, error)
}

type PaymentUseCase struct {
	repo      interfaces.IAnalysisRecordRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IPaymentEventPublisher
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IAnalysisRecordRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IPaymentEventPublisher) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway, publisher: publisher}
}

// CreateCardPayment charges a card synchronously and reconciles the result
// into the analysis record.
//
// The record write is best effort: gateway truth already exists by then, so
// a persistence failure is logged as critical and the client response is
// built from the gateway answer regardless.
func (u *PaymentUseCase) CreateCardPayment(ctx context.Context, req request.CardPaymentRequest) (CardPaymentResult, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		logger.Warn("card payment rejected: missing required fields",
			zap.Strings("missing_fields", missing),
		)
		return CardPaymentResult{}, &ValidationError{Fields: missing}
	}

	payload := entities.GatewayPaymentRequest{
		TransactionAmount: req.TransactionAmount,
		Token:             req.Token,
		Description:       req.Description,
		Installments:      req.Installments,
		PaymentMethodID:   req.PaymentMethodID,
		IssuerID:          req.IssuerID,
		Payer: entities.GatewayPayer{
			Email: req.Payer.Email,
			Identification: entities.GatewayIdentification{
				Type:   req.Payer.Identification.Type,
				Number: req.Payer.Identification.Number,
			},
		},
	}

	payment, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.Error("card payment gateway call failed",
			zap.String("analysis_id", req.AnalysisID),
			zap.Error(err),
		)
		return CardPaymentResult{}, err
	}

	approved := payment.IsApproved()
	logger.Info("card payment processed by gateway",
		zap.String("analysis_id", req.AnalysisID),
		zap.Int64("payment_id", payment.ID),
		zap.String("status", payment.Status),
		zap.Bool("approved", approved),
	)

	u.persistOutcome(ctx, req.AnalysisID, payment, entities.PaymentUpdate{
		PaymentStatus: payment.Status,
		PaymentDetail: payment.StatusDetail,
		PaymentID:     payment.ID,
		MarkPremium:   approved,
	})

	if approved {
		u.publishUnlock(ctx, entities.PremiumUnlockedEvent{
			AnalysisID:   req.AnalysisID,
			PaymentID:    payment.ID,
			Status:       payment.Status,
			StatusDetail: payment.StatusDetail,
			Source:       "card_payment",
		})
	}

	return CardPaymentResult{
		Approved:     approved,
		Status:       payment.Status,
		StatusDetail: payment.StatusDetail,
		PaymentID:    payment.ID,
		Message:      cardPaymentMessage(payment, approved),
	}, nil
}

// CreatePixPayment creates a pending bank-transfer payment and returns its
// QR payload.
//
// Unlike the card flow, the record upsert always happens on gateway
// success: the webhook processor later locates the record by payment id,
// so that linkage must exist even while the payment is still pending. The
// upsert merges into whatever the save flow already persisted.
func (u *PaymentUseCase) CreatePixPayment(ctx context.Context, req request.PixPaymentRequest) (PixPaymentResult, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		logger.Warn("pix payment rejected: missing required fields",
			zap.Strings("missing_fields", missing),
		)
		return PixPaymentResult{}, &ValidationError{Fields: missing}
	}

	payload := entities.GatewayPaymentRequest{
		TransactionAmount: req.TransactionAmount,
		Description:       req.Description,
		PaymentMethodID:   pixPaymentMethodID,
		Payer: entities.GatewayPayer{
			Email: req.Payer.Email,
			Identification: entities.GatewayIdentification{
				Type:   req.Payer.Identification.Type,
				Number: req.Payer.Identification.Number,
			},
		},
	}

	payment, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.Error("pix payment gateway call failed",
			zap.String("analysis_id", req.AnalysisID),
			zap.Error(err),
		)
		return PixPaymentResult{}, err
	}

	logger.Info("pix payment created",
		zap.String("analysis_id", req.AnalysisID),
		zap.Int64("payment_id", payment.ID),
		zap.String("status", payment.Status),
	)

	u.persistOutcome(ctx, req.AnalysisID, payment, entities.PaymentUpdate{
		PaymentStatus: payment.Status,
		PaymentDetail: payment.StatusDetail,
		PaymentID:     payment.ID,
		PaymentMethod: pixPaymentMethodID,
	})

	qr := payment.PixTransactionData()
	if qr == nil || qr.QRCode == "" {
		logger.Error("pix payment response missing transaction data",
			zap.String("analysis_id", req.AnalysisID),
			zap.Int64("payment_id", payment.ID),
		)
		return PixPaymentResult{}, ErrMissingPixQRCode
	}

	return PixPaymentResult{
		Status:       payment.Status,
		StatusDetail: payment.StatusDetail,
		PaymentID:    payment.ID,
		QRCode:       qr.QRCode,
		QRCodeBase64: qr.QRCodeBase64,
		ExpiresAt:    qr.ExpirationAt,
	}, nil
}

// GetPaymentStatus serves the client poller waiting for the webhook to
// confirm a Pix payment.
func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, analysisID string) (entities.AnalysisRecord, error) {
	analysisID = strings.TrimSpace(analysisID)
	if analysisID == "" {
		return entities.AnalysisRecord{}, ErrAnalysisRecordNotFound
	}

	rec, err := u.repo.GetByID(ctx, analysisID)
	if err != nil {
		return entities.AnalysisRecord{}, err
	}
	if rec.ID == "" {
		return entities.AnalysisRecord{}, ErrAnalysisRecordNotFound
	}
	return rec, nil
}

// persistOutcome applies the gateway outcome to the analysis record. Never
// fails the caller: the gateway already holds the payment truth and the
// client response must reflect it even when storage hiccups.
func (u *PaymentUseCase) persistOutcome(ctx context.Context, analysisID string, payment entities.GatewayPayment, update entities.PaymentUpdate) {
	if err := u.repo.UpsertPaymentFields(ctx, analysisID, update); err != nil {
		logger.Error("CRITICAL: analysis record update failed after gateway success",
			zap.String("analysis_id", analysisID),
			zap.Int64("payment_id", payment.ID),
			zap.String("payment_status", payment.Status),
			zap.Error(err),
		)
	}
}

func (u *PaymentUseCase) publishUnlock(ctx context.Context, event entities.PremiumUnlockedEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.PublishPremiumUnlocked(ctx, event); err != nil {
		logger.Warn("premium unlock event publish failed",
			zap.String("analysis_id", event.AnalysisID),
			zap.Int64("payment_id", event.PaymentID),
			zap.Error(err),
		)
	}
}

func cardPaymentMessage(payment entities.GatewayPayment, approved bool) string {
	if approved {
		return "Pagamento aprovado com sucesso."
	}
	return fmt.Sprintf("Pagamento %s. %s", payment.Status, payment.StatusDetail)
}
