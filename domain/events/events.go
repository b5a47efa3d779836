package events

import (
	"time"
)

// DomainEvent is the base interface for all domain events.
// Events represent something that has already happened.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// PlaybookCreated is raised when a new playbook passes validation and
// is persisted for the first time.
type PlaybookCreated struct {
	BaseEvent
	PlaybookID string `json:"playbook_id"`
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	NodeCount  int    `json:"node_count"`
	EdgeCount  int    `json:"edge_count"`
}

// NewPlaybookCreated creates a PlaybookCreated event.
func NewPlaybookCreated(playbookID, userID, name string, nodeCount, edgeCount int, timestamp time.Time) PlaybookCreated {
	return PlaybookCreated{
		BaseEvent: BaseEvent{
			AggregateID: playbookID,
			EventType:   "playbook.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		PlaybookID: playbookID,
		UserID:     userID,
		Name:       name,
		NodeCount:  nodeCount,
		EdgeCount:  edgeCount,
	}
}

// PlaybookGraphUpdated is raised when a playbook's graph is replaced
// with a new validated version.
type PlaybookGraphUpdated struct {
	BaseEvent
	PlaybookID string `json:"playbook_id"`
	UserID     string `json:"user_id"`
	NodeCount  int    `json:"node_count"`
	EdgeCount  int    `json:"edge_count"`
}

// NewPlaybookGraphUpdated creates a PlaybookGraphUpdated event.
func NewPlaybookGraphUpdated(playbookID, userID string, nodeCount, edgeCount int, timestamp time.Time) PlaybookGraphUpdated {
	return PlaybookGraphUpdated{
		BaseEvent: BaseEvent{
			AggregateID: playbookID,
			EventType:   "playbook.graph_updated",
			Timestamp:   timestamp,
			Version:     1,
		},
		PlaybookID: playbookID,
		UserID:     userID,
		NodeCount:  nodeCount,
		EdgeCount:  edgeCount,
	}
}

// PlaybookDeleted is raised when a playbook is removed.
type PlaybookDeleted struct {
	BaseEvent
	PlaybookID string `json:"playbook_id"`
	UserID     string `json:"user_id"`
}

// NewPlaybookDeleted creates a PlaybookDeleted event.
func NewPlaybookDeleted(playbookID, userID string, timestamp time.Time) PlaybookDeleted {
	return PlaybookDeleted{
		BaseEvent: BaseEvent{
			AggregateID: playbookID,
			EventType:   "playbook.deleted",
			Timestamp:   timestamp,
			Version:     1,
		},
		PlaybookID: playbookID,
		UserID:     userID,
	}
}
