// Package memory provides an in-memory playbook repository for local
// development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"playbook-backend/application/ports"
	"playbook-backend/domain/playbook"
	"playbook-backend/pkg/errors"
)

// PlaybookRepository is a thread-safe map-backed repository.
type PlaybookRepository struct {
	mu    sync.RWMutex
	items map[playbook.ID]*playbook.Playbook
}

// NewPlaybookRepository creates an empty in-memory repository.
func NewPlaybookRepository() *PlaybookRepository {
	return &PlaybookRepository{
		items: make(map[playbook.ID]*playbook.Playbook),
	}
}

var _ ports.PlaybookRepository = (*PlaybookRepository)(nil)

// Save stores or replaces a playbook.
func (r *PlaybookRepository) Save(_ context.Context, p *playbook.Playbook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID()] = p
	return nil
}

// GetByID returns a stored playbook or ErrPlaybookNotFound.
func (r *PlaybookRepository) GetByID(_ context.Context, id playbook.ID) (*playbook.Playbook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, errors.ErrPlaybookNotFound.WithDetail("playbookID", id.String())
	}
	return p, nil
}

// ListByUser returns the user's playbooks sorted by id for a stable
// order across calls.
func (r *PlaybookRepository) ListByUser(_ context.Context, userID string) ([]*playbook.Playbook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*playbook.Playbook, 0)
	for _, p := range r.items {
		if p.UserID() == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

// Delete removes a playbook or returns ErrPlaybookNotFound.
func (r *PlaybookRepository) Delete(_ context.Context, id playbook.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return errors.ErrPlaybookNotFound.WithDetail("playbookID", id.String())
	}
	delete(r.items, id)
	return nil
}
