package events

import (
	"context"
	"encoding/json"
	"os"

	"analysis_billing/internal/domain/entities"
	"analysis_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSPublisher fans premium-unlock events out to an SNS topic so other
// services (mail, analytics) can react without polling the record store.
type SNSPublisher struct {
	client   *sns.Client
	topicARN string
}

var _ interfaces.IPaymentEventPublisher = (*SNSPublisher)(nil)

func NewSNSPublisher(cfg aws.Config) *SNSPublisher {
	return &SNSPublisher{
		client:   sns.NewFromConfig(cfg),
		topicARN: os.Getenv("AWS_SNS_TOPIC_ARN"),
	}
}

// Configured reports whether a topic ARN is present; without one the
// publisher is left out of the dependency graph entirely.
func (p *SNSPublisher) Configured() bool {
	return p.topicARN != ""
}

func (p *SNSPublisher) PublishPremiumUnlocked(ctx context.Context, event entities.PremiumUnlockedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		Message:  aws.String(string(payload)),
		TopicArn: aws.String(p.topicARN),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String("premium_unlocked"),
			},
			"source": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Source),
			},
		},
	})
	return err
}
