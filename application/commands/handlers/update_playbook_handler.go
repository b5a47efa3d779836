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

// UpdatePlaybookGraphHandler handles UpdatePlaybookGraphCommand.
type UpdatePlaybookGraphHandler struct {
	repo      ports.PlaybookRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewUpdatePlaybookGraphHandler creates a new update handler.
func NewUpdatePlaybookGraphHandler(
	repo ports.PlaybookRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *UpdatePlaybookGraphHandler {
	return &UpdatePlaybookGraphHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle validates the replacement graph and persists the updated
// playbook. The stored graph is untouched when validation fails.
func (h *UpdatePlaybookGraphHandler) Handle(ctx context.Context, cmd commands.UpdatePlaybookGraphCommand) error {
	result := validation.Validate(cmd.Graph)
	if !result.Valid {
		return errors.ErrGraphNotExecutable.
			WithDetail("issues", result.Issues).
			WithDetail("errors", result.Errors)
	}

	p, err := h.repo.GetByID(ctx, playbook.ID(cmd.PlaybookID))
	if err != nil {
		return err
	}
	if p.UserID() != cmd.UserID {
		return errors.ErrPlaybookAccessDenied
	}

	p.ReplaceGraph(cmd.Graph)

	if err := h.repo.Save(ctx, p); err != nil {
		return errors.ErrRepositoryUnavailable.WithCause(err)
	}

	publishEvents(ctx, h.publisher, h.logger, p)

	h.logger.Info("Updated playbook graph",
		zap.String("playbookID", p.ID().String()),
		zap.Int("version", p.Version()),
	)

	return nil
}
