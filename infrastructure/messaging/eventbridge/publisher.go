// Package eventbridge publishes playbook lifecycle events to an AWS
// EventBridge bus.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"playbook-backend/application/ports"
	"playbook-backend/domain/events"
)

const eventSource = "playbook-backend"

// Publisher implements ports.EventPublisher on EventBridge.
type Publisher struct {
	client  *eventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewPublisher creates a new EventBridge publisher.
func NewPublisher(client *eventbridge.Client, busName string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Publish sends a single event to the bus.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch sends events in chunks of ten, the PutEvents limit.
func (p *Publisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	if len(batch) == 0 {
		return nil
	}

	entries := make([]types.PutEventsRequestEntry, 0, len(batch))
	for _, event := range batch {
		detail, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", event.GetEventType(), err)
		}
		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.busName),
			Source:       aws.String(eventSource),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(detail)),
			Time:         aws.Time(event.GetTimestamp()),
		})
	}

	for start := 0; start < len(entries); start += 10 {
		end := start + 10
		if end > len(entries) {
			end = len(entries)
		}

		out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
			Entries: entries[start:end],
		})
		if err != nil {
			return fmt.Errorf("failed to put events: %w", err)
		}
		if out.FailedEntryCount > 0 {
			for _, entry := range out.Entries {
				if entry.ErrorCode != nil {
					p.logger.Warn("EventBridge rejected entry",
						zap.String("errorCode", aws.ToString(entry.ErrorCode)),
						zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
					)
				}
			}
			return fmt.Errorf("event bus rejected %d entries", out.FailedEntryCount)
		}
	}

	return nil
}
