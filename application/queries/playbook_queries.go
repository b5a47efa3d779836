// Package queries defines the read-side requests of the playbook
// service and the view models they return.
package queries

import (
	"fmt"
	"time"

	"playbook-backend/domain/playbook"
)

// ValidateGraphQuery runs the structural validator against a graph
// without touching storage.
type ValidateGraphQuery struct {
	Graph playbook.Graph
}

// Validate always succeeds; every graph, including an empty one, is a
// legal input to the validator.
func (q ValidateGraphQuery) Validate() error {
	return nil
}

// GetPlaybookQuery fetches a single playbook owned by the caller.
type GetPlaybookQuery struct {
	PlaybookID string
	UserID     string
}

// Validate checks the query's required fields.
func (q GetPlaybookQuery) Validate() error {
	if q.PlaybookID == "" {
		return fmt.Errorf("playbookID is required")
	}
	if q.UserID == "" {
		return fmt.Errorf("userID is required")
	}
	return nil
}

// ListPlaybooksQuery fetches all playbooks owned by the caller.
type ListPlaybooksQuery struct {
	UserID string
}

// Validate checks the query's required fields.
func (q ListPlaybooksQuery) Validate() error {
	if q.UserID == "" {
		return fmt.Errorf("userID is required")
	}
	return nil
}

// PlaybookView is the full read model of a playbook.
type PlaybookView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Graph     playbook.Graph `json:"graph"`
	Version   int            `json:"version"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// PlaybookSummary is the list read model. It omits the graph body and
// carries counts instead.
type PlaybookSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NodeCount int       `json:"nodeCount"`
	EdgeCount int       `json:"edgeCount"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPlaybookView builds a PlaybookView from the aggregate.
func NewPlaybookView(p *playbook.Playbook) PlaybookView {
	return PlaybookView{
		ID:        p.ID().String(),
		Name:      p.Name(),
		Graph:     p.Graph(),
		Version:   p.Version(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

// NewPlaybookSummary builds a PlaybookSummary from the aggregate.
func NewPlaybookSummary(p *playbook.Playbook) PlaybookSummary {
	return PlaybookSummary{
		ID:        p.ID().String(),
		Name:      p.Name(),
		NodeCount: p.Graph().NodeCount(),
		EdgeCount: p.Graph().EdgeCount(),
		Version:   p.Version(),
		UpdatedAt: p.UpdatedAt(),
	}
}
