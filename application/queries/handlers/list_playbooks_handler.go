package handlers

import (
	"context"

	"playbook-backend/application/ports"
	"playbook-backend/application/queries"
)

// ListPlaybooksHandler handles ListPlaybooksQuery.
type ListPlaybooksHandler struct {
	repo ports.PlaybookRepository
}

// NewListPlaybooksHandler creates a new list handler.
func NewListPlaybooksHandler(repo ports.PlaybookRepository) *ListPlaybooksHandler {
	return &ListPlaybooksHandler{repo: repo}
}

// Handle returns summaries of every playbook the caller owns. An
// empty account yields an empty slice, not nil.
func (h *ListPlaybooksHandler) Handle(ctx context.Context, q queries.ListPlaybooksQuery) (interface{}, error) {
	items, err := h.repo.ListByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	summaries := make([]queries.PlaybookSummary, 0, len(items))
	for _, p := range items {
		summaries = append(summaries, queries.NewPlaybookSummary(p))
	}
	return summaries, nil
}
