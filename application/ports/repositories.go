// Package ports defines the interfaces the application layer depends
// on; infrastructure supplies the implementations.
package ports

import (
	"context"

	"playbook-backend/domain/events"
	"playbook-backend/domain/playbook"
)

// PlaybookRepository provides access to persisted playbooks.
type PlaybookRepository interface {
	// Save persists a playbook, overwriting any previous version.
	Save(ctx context.Context, p *playbook.Playbook) error

	// GetByID retrieves a playbook, returning ErrPlaybookNotFound
	// when no playbook has that id.
	GetByID(ctx context.Context, id playbook.ID) (*playbook.Playbook, error)

	// ListByUser returns all playbooks owned by a user.
	ListByUser(ctx context.Context, userID string) ([]*playbook.Playbook, error)

	// Delete removes a playbook.
	Delete(ctx context.Context, id playbook.ID) error
}

// EventPublisher publishes domain events to the outside world.
// Publication is best-effort: mutation handlers log failures but do
// not roll back on them.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
