package playbook

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"playbook-backend/domain/events"
)

// ID represents a unique playbook identifier.
type ID string

// NewID creates a new random playbook ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// String returns the string representation.
func (id ID) String() string {
	return string(id)
}

// Playbook is the aggregate root for a workflow graph built in the
// editor. The aggregate holds whatever graph the caller hands it;
// structural validation is enforced at the application boundary so
// that an invalid graph is never persisted.
type Playbook struct {
	id        ID
	userID    string
	name      string
	graph     Graph
	createdAt time.Time
	updatedAt time.Time
	version   int
	events    []events.DomainEvent
}

// New creates a new playbook aggregate with a generated id.
func New(userID, name string, graph Graph) (*Playbook, error) {
	return NewWithID(NewID(), userID, name, graph)
}

// NewWithID creates a new playbook aggregate with a caller-supplied
// id, so the HTTP layer can return the id without round-tripping
// through the command bus.
func NewWithID(id ID, userID, name string, graph Graph) (*Playbook, error) {
	if id == "" {
		return nil, errors.New("playbook id required")
	}
	if userID == "" {
		return nil, errors.New("userID required")
	}
	if name == "" {
		return nil, errors.New("playbook name required")
	}

	now := time.Now()
	p := &Playbook{
		id:        id,
		userID:    userID,
		name:      name,
		graph:     graph,
		createdAt: now,
		updatedAt: now,
		version:   1,
		events:    []events.DomainEvent{},
	}

	p.addEvent(events.NewPlaybookCreated(
		p.id.String(), userID, name, graph.NodeCount(), graph.EdgeCount(), now,
	))

	return p, nil
}

// Reconstruct recreates a playbook from stored data without raising
// lifecycle events.
func Reconstruct(id, userID, name string, graph Graph, createdAt, updatedAt time.Time, version int) (*Playbook, error) {
	if id == "" || userID == "" || name == "" {
		return nil, errors.New("required fields missing for playbook reconstruction")
	}

	return &Playbook{
		id:        ID(id),
		userID:    userID,
		name:      name,
		graph:     graph,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
		events:    []events.DomainEvent{},
	}, nil
}

// ID returns the playbook's unique identifier.
func (p *Playbook) ID() ID {
	return p.id
}

// UserID returns the owner's ID.
func (p *Playbook) UserID() string {
	return p.userID
}

// Name returns the playbook's name.
func (p *Playbook) Name() string {
	return p.name
}

// Graph returns the playbook's workflow graph.
func (p *Playbook) Graph() Graph {
	return p.graph
}

// CreatedAt returns when the playbook was created.
func (p *Playbook) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the playbook was last updated.
func (p *Playbook) UpdatedAt() time.Time {
	return p.updatedAt
}

// Version returns the aggregate version, bumped on every mutation.
func (p *Playbook) Version() int {
	return p.version
}

// ReplaceGraph swaps in a new workflow graph. Callers are expected to
// have validated the graph first.
func (p *Playbook) ReplaceGraph(graph Graph) {
	p.graph = graph
	p.updatedAt = time.Now()
	p.version++

	p.addEvent(events.NewPlaybookGraphUpdated(
		p.id.String(), p.userID, graph.NodeCount(), graph.EdgeCount(), p.updatedAt,
	))
}

// GetUncommittedEvents returns all uncommitted domain events.
func (p *Playbook) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}

// MarkEventsAsCommitted clears all uncommitted events.
func (p *Playbook) MarkEventsAsCommitted() {
	p.events = []events.DomainEvent{}
}

func (p *Playbook) addEvent(event events.DomainEvent) {
	p.events = append(p.events, event)
}
