package usecase

import (
	"context"

	"analysis_billing/internal/adapter/http/dto/request"
	"analysis_billing/internal/domain/entities"
	"analysis_billing/internal/logger"
	"analysis_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// statusDetailFallback is stored when the gateway confirms approval but
// reports no status detail of its own.
const statusDetailFallback = "approved_by_webhook"

// WebhookOutcome tells the handler what happened so it can pick the
// response body; every outcome maps to HTTP 200.
type WebhookOutcome string

const (
	// OutcomeIgnored - non-payment topic or unusable payment id.
	OutcomeIgnored WebhookOutcome = "ignored"
	// OutcomeFetchFailed - the canonical status re-fetch failed; the
	// gateway will redeliver the notification later on its own schedule.
	OutcomeFetchFailed WebhookOutcome = "fetch_failed"
	// OutcomeNotApproved - fetched status is not approved; no mutation.
	OutcomeNotApproved WebhookOutcome = "not_approved"
	// OutcomeRecordMissing - approved payment with no matching record.
	OutcomeRecordMissing WebhookOutcome = "record_missing"
	// OutcomePersistFailed - approved but the record write failed.
	OutcomePersistFailed WebhookOutcome = "persist_failed"
	// OutcomeUnlocked - premium flag set (or re-confirmed on replay).
	OutcomeUnlocked WebhookOutcome = "unlocked"
)

// IWebhookUseCase reconciles verified gateway notifications into the
// analysis record store.

type IWebhookUseCase interface {
	ProcessPaymentNotification(ctx context.Context, notification request.WebhookNotification) WebhookOutcome
}

type WebhookUseCase struct {
	repo      interfaces.IAnalysisRecordRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IPaymentEventPublisher
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(repo interfaces.IAnalysisRecordRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IPaymentEventPublisher) *WebhookUseCase {
	return &WebhookUseCase{repo: repo, gateway: gateway, publisher: publisher}
}

// ProcessPaymentNotification runs after the handler has already verified
// the signature and parsed the body.
//
// The notification is only a hint: the approval decision comes from a
// direct fetch of the payment, never from the notification's own fields.
// Every failure past this point is absorbed (logged, outcome returned)
// because the gateway must still receive a 200; concurrent deliveries for
// the same payment id are safe because the final write is idempotent.
func (u *WebhookUseCase) ProcessPaymentNotification(ctx context.Context, notification request.WebhookNotification) WebhookOutcome {
	if !notification.IsPaymentTopic() {
		logger.Info("webhook topic ignored",
			zap.String("topic", notification.Type),
			zap.String("data_id", notification.Data.ID.String()),
		)
		return OutcomeIgnored
	}

	paymentID, ok := notification.PaymentID()
	if !ok {
		logger.Warn("payment webhook without a usable payment id",
			zap.String("data_id", notification.Data.ID.String()),
		)
		return OutcomeIgnored
	}

	payment, err := u.gateway.GetPaymentByID(ctx, paymentID)
	if err != nil {
		logger.Error("canonical payment fetch failed",
			zap.Int64("payment_id", paymentID),
			zap.Error(err),
		)
		return OutcomeFetchFailed
	}

	if !payment.IsApproved() {
		logger.Info("payment not approved yet, nothing to reconcile",
			zap.Int64("payment_id", paymentID),
			zap.String("status", payment.Status),
		)
		return OutcomeNotApproved
	}

	rec, err := u.repo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		logger.Error("analysis record lookup by payment id failed",
			zap.Int64("payment_id", paymentID),
			zap.Error(err),
		)
		return OutcomePersistFailed
	}
	if rec.ID == "" {
		logger.Warn("no analysis record found for approved payment",
			zap.Int64("payment_id", paymentID),
		)
		return OutcomeRecordMissing
	}

	detail := payment.StatusDetail
	if detail == "" {
		detail = statusDetailFallback
	}

	err = u.repo.UpsertPaymentFields(ctx, rec.ID, entities.PaymentUpdate{
		PaymentStatus: string(entities.PaymentStatusApproved),
		PaymentDetail: detail,
		PaymentID:     paymentID,
		MarkPremium:   true,
	})
	if err != nil {
		logger.Error("CRITICAL: premium unlock write failed for approved payment",
			zap.String("analysis_id", rec.ID),
			zap.Int64("payment_id", paymentID),
			zap.Error(err),
		)
		return OutcomePersistFailed
	}

	logger.Info("premium unlocked",
		zap.String("analysis_id", rec.ID),
		zap.Int64("payment_id", paymentID),
	)

	u.publishUnlock(ctx, entities.PremiumUnlockedEvent{
		AnalysisID:    rec.ID,
		PaymentID:     paymentID,
		PaymentMethod: rec.PaymentMethod,
		Status:        payment.Status,
		StatusDetail:  detail,
		Source:        "webhook",
	})

	return OutcomeUnlocked
}

func (u *WebhookUseCase) publishUnlock(ctx context.Context, event entities.PremiumUnlockedEvent) {
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
