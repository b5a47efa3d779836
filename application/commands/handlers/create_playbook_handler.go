// Package handlers implements the command handlers of the playbook
// service. Mutation handlers run the structural validator before any
// write: a graph with error-severity issues is never persisted.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"playbook-backend/application/commands"
	"playbook-backend/application/ports"
	"playbook-backend/domain/playbook"
	"playbook-backend/domain/playbook/validation"
	"playbook-backend/pkg/errors"
)

// CreatePlaybookHandler handles CreatePlaybookCommand.
type CreatePlaybookHandler struct {
	repo      ports.PlaybookRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewCreatePlaybookHandler creates a new create handler.
func NewCreatePlaybookHandler(
	repo ports.PlaybookRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *CreatePlaybookHandler {
	return &CreatePlaybookHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle validates the graph, persists the playbook, and publishes
// its lifecycle events.
func (h *CreatePlaybookHandler) Handle(ctx context.Context, cmd commands.CreatePlaybookCommand) error {
	result := validation.Validate(cmd.Graph)
	if !result.Valid {
		h.logger.Info("Rejected playbook with invalid graph",
			zap.String("userID", cmd.UserID),
			zap.Int("issues", len(result.Issues)),
		)
		return errors.ErrGraphNotExecutable.
			WithDetail("issues", result.Issues).
			WithDetail("errors", result.Errors)
	}

	p, err := playbook.NewWithID(playbook.ID(cmd.PlaybookID), cmd.UserID, cmd.Name, cmd.Graph)
	if err != nil {
		return errors.ErrPlaybookNameRequired.WithCause(err)
	}

	if err := h.repo.Save(ctx, p); err != nil {
		return errors.ErrRepositoryUnavailable.WithCause(err)
	}

	publishEvents(ctx, h.publisher, h.logger, p)

	h.logger.Info("Created playbook",
		zap.String("playbookID", p.ID().String()),
		zap.String("userID", p.UserID()),
		zap.Int("nodeCount", p.Graph().NodeCount()),
		zap.Int("edgeCount", p.Graph().EdgeCount()),
		zap.Int("warnings", len(result.Issues)),
	)

	return nil
}

// publishEvents flushes a playbook's uncommitted events. Publication
// is best-effort; a failed publish is logged and the write stands.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, logger *zap.Logger, p *playbook.Playbook) {
	events := p.GetUncommittedEvents()
	if len(events) == 0 {
		return
	}
	if err := publisher.PublishBatch(ctx, events); err != nil {
		logger.Warn("Failed to publish playbook events",
			zap.String("playbookID", p.ID().String()),
			zap.Int("count", len(events)),
			zap.Error(err),
		)
		return
	}
	p.MarkEventsAsCommitted()
}
