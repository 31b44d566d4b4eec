package interfaces

import (
	"context"

	"analysis_billing/internal/domain/entities"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher.go -package=mock_interfaces

// IPaymentEventPublisher notifies downstream consumers that a premium
// unlock happened. Publishing is best effort; failures are logged and never
// affect the payment flow.
type IPaymentEventPublisher interface {
	PublishPremiumUnlocked(ctx context.Context, event entities.PremiumUnlockedEvent) error
}
