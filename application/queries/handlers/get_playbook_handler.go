package handlers

import (
	"context"

	"playbook-backend/application/ports"
	"playbook-backend/application/queries"
	"playbook-backend/domain/playbook"
	"playbook-backend/pkg/errors"
)

// GetPlaybookHandler handles GetPlaybookQuery.
type GetPlaybookHandler struct {
	repo ports.PlaybookRepository
}

// NewGetPlaybookHandler creates a new get handler.
func NewGetPlaybookHandler(repo ports.PlaybookRepository) *GetPlaybookHandler {
	return &GetPlaybookHandler{repo: repo}
}

// Handle loads a playbook and enforces ownership. A playbook owned by
// another user is reported as not found rather than forbidden.
func (h *GetPlaybookHandler) Handle(ctx context.Context, q queries.GetPlaybookQuery) (interface{}, error) {
	p, err := h.repo.GetByID(ctx, playbook.ID(q.PlaybookID))
	if err != nil {
		return nil, err
	}
	if p.UserID() != q.UserID {
		return nil, errors.ErrPlaybookNotFound.WithDetail("playbookID", q.PlaybookID)
	}
	return queries.NewPlaybookView(p), nil
}
