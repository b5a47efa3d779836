package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"playbook-backend/application/commands"
	"playbook-backend/application/ports"
	"playbook-backend/domain/events"
	"playbook-backend/domain/playbook"
	"playbook-backend/pkg/errors"
)

// DeletePlaybookHandler handles DeletePlaybookCommand.
type DeletePlaybookHandler struct {
	repo      ports.PlaybookRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewDeletePlaybookHandler creates a new delete handler.
func NewDeletePlaybookHandler(
	repo ports.PlaybookRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *DeletePlaybookHandler {
	return &DeletePlaybookHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle removes the playbook after an ownership check.
func (h *DeletePlaybookHandler) Handle(ctx context.Context, cmd commands.DeletePlaybookCommand) error {
	p, err := h.repo.GetByID(ctx, playbook.ID(cmd.PlaybookID))
	if err != nil {
		return err
	}
	if p.UserID() != cmd.UserID {
		return errors.ErrPlaybookAccessDenied
	}

	if err := h.repo.Delete(ctx, p.ID()); err != nil {
		return errors.ErrRepositoryUnavailable.WithCause(err)
	}

	event := events.NewPlaybookDeleted(cmd.PlaybookID, cmd.UserID, time.Now())
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("Failed to publish playbook deleted event",
			zap.String("playbookID", cmd.PlaybookID),
			zap.Error(err),
		)
	}

	h.logger.Info("Deleted playbook", zap.String("playbookID", cmd.PlaybookID))
	return nil
}
