package usecase

import (
	"context"
	"errors"
	"testing"

	"analysis_billing/internal/adapter/http/dto/request"
	"analysis_billing/internal/domain/entities"
	mock_interfaces "analysis_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paymentNotification(id string) request.WebhookNotification {
	var n request.WebhookNotification
	n.Type = "payment"
	n.Action = "payment.updated"
	n.Data.ID = request.NotificationID(id)
	return n
}

func TestWebhookUseCase_ProcessPaymentNotification(t *testing.T) {
	t.Run("non-payment topic is ignored", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, nil)

		n := paymentNotification("123456")
		n.Type = "merchant_order"

		if outcome := uc.ProcessPaymentNotification(context.Background(), n); outcome != OutcomeIgnored {
			t.Fatalf("expected OutcomeIgnored, got %q", outcome)
		}
	})

	t.Run("non-numeric payment id is ignored", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, nil)

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("abc")); outcome != OutcomeIgnored {
			t.Fatalf("expected OutcomeIgnored, got %q", outcome)
		}
	})

	t.Run("canonical fetch failure is absorbed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(nil, gateway, nil)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(entities.GatewayPayment{}, errors.New("timeout"))

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomeFetchFailed {
			t.Fatalf("expected OutcomeFetchFailed, got %q", outcome)
		}
	})

	t.Run("pending payment mutates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(nil, gateway, nil)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(entities.GatewayPayment{ID: 123456, Status: "pending"}, nil)

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomeNotApproved {
			t.Fatalf("expected OutcomeNotApproved, got %q", outcome)
		}
	})

	t.Run("approved payment without a record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAnalysisRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(entities.GatewayPayment{ID: 123456, Status: "approved"}, nil)
		repo.EXPECT().FindByPaymentID(gomock.Any(), int64(123456)).Return(entities.AnalysisRecord{}, nil)

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomeRecordMissing {
			t.Fatalf("expected OutcomeRecordMissing, got %q", outcome)
		}
	})

	t.Run("record lookup failure is absorbed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAnalysisRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(entities.GatewayPayment{ID: 123456, Status: "approved"}, nil)
		repo.EXPECT().FindByPaymentID(gomock.Any(), int64(123456)).Return(entities.AnalysisRecord{}, errors.New("dynamo down"))

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomePersistFailed {
			t.Fatalf("expected OutcomePersistFailed, got %q", outcome)
		}
	})

	t.Run("approved payment unlocks premium", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAnalysisRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		publisher := mock_interfaces.NewMockIPaymentEventPublisher(ctrl)
		uc := NewWebhookUseCase(repo, gateway, publisher)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(
			entities.GatewayPayment{ID: 123456, Status: "approved", StatusDetail: "accredited"}, nil)
		repo.EXPECT().FindByPaymentID(gomock.Any(), int64(123456)).Return(
			entities.AnalysisRecord{ID: "analysis-1", PaymentMethod: "pix"}, nil)
		repo.EXPECT().UpsertPaymentFields(gomock.Any(), "analysis-1", entities.PaymentUpdate{
			PaymentStatus: "approved",
			PaymentDetail: "accredited",
			PaymentID:     123456,
			MarkPremium:   true,
		}).Return(nil)
		publisher.EXPECT().PublishPremiumUnlocked(gomock.Any(), gomock.AssignableToTypeOf(entities.PremiumUnlockedEvent{})).DoAndReturn(
			func(_ context.Context, event entities.PremiumUnlockedEvent) error {
				if event.AnalysisID != "analysis-1" || event.PaymentID != 123456 || event.Source != "webhook" {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			},
		)

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomeUnlocked {
			t.Fatalf("expected OutcomeUnlocked, got %q", outcome)
		}
	})

	t.Run("empty status detail falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAnalysisRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(
			entities.GatewayPayment{ID: 123456, Status: "approved"}, nil)
		repo.EXPECT().FindByPaymentID(gomock.Any(), int64(123456)).Return(
			entities.AnalysisRecord{ID: "analysis-1"}, nil)
		repo.EXPECT().UpsertPaymentFields(gomock.Any(), "analysis-1", entities.PaymentUpdate{
			PaymentStatus: "approved",
			PaymentDetail: "approved_by_webhook",
			PaymentID:     123456,
			MarkPremium:   true,
		}).Return(nil)

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomeUnlocked {
			t.Fatalf("expected OutcomeUnlocked, got %q", outcome)
		}
	})

	t.Run("unlock write failure is absorbed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAnalysisRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(
			entities.GatewayPayment{ID: 123456, Status: "approved"}, nil)
		repo.EXPECT().FindByPaymentID(gomock.Any(), int64(123456)).Return(
			entities.AnalysisRecord{ID: "analysis-1"}, nil)
		repo.EXPECT().UpsertPaymentFields(gomock.Any(), "analysis-1", gomock.Any()).Return(errors.New("dynamo down"))

		if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomePersistFailed {
			t.Fatalf("expected OutcomePersistFailed, got %q", outcome)
		}
	})

	t.Run("replayed delivery re-applies the same write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAnalysisRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().GetPaymentByID(gomock.Any(), int64(123456)).Return(
			entities.GatewayPayment{ID: 123456, Status: "approved", StatusDetail: "accredited"}, nil).Times(2)
		repo.EXPECT().FindByPaymentID(gomock.Any(), int64(123456)).Return(
			entities.AnalysisRecord{ID: "analysis-1", PaymentStatus: "approved", IsPremiumAnalysis: true}, nil).Times(2)
		repo.EXPECT().UpsertPaymentFields(gomock.Any(), "analysis-1", gomock.Any()).Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			if outcome := uc.ProcessPaymentNotification(context.Background(), paymentNotification("123456")); outcome != OutcomeUnlocked {
				t.Fatalf("expected OutcomeUnlocked on delivery %d, got %q", i+1, outcome)
			}
		}
	})
}
