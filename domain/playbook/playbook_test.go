package playbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaisesCreatedEvent(t *testing.T) {
	graph := Graph{Nodes: []Node{{ID: "a", Kind: KindAgent}}}

	p, err := New("user-1", "Launch sequence", graph)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID().String())
	assert.Equal(t, "user-1", p.UserID())
	assert.Equal(t, "Launch sequence", p.Name())
	assert.Equal(t, 1, p.Version())

	events := p.GetUncommittedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "playbook.created", events[0].GetEventType())
	assert.Equal(t, p.ID().String(), events[0].GetAggregateID())
}

func TestNewRejectsMissingFields(t *testing.T) {
	graph := Graph{Nodes: []Node{{ID: "a"}}}

	_, err := New("", "name", graph)
	assert.Error(t, err)

	_, err = New("user-1", "", graph)
	assert.Error(t, err)

	_, err = NewWithID("", "user-1", "name", graph)
	assert.Error(t, err)
}

func TestReplaceGraphBumpsVersionAndRaisesEvent(t *testing.T) {
	p, err := New("user-1", "Launch sequence", Graph{Nodes: []Node{{ID: "a"}}})
	require.NoError(t, err)
	p.MarkEventsAsCommitted()

	replacement := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Edges: []Edge{{ID: "e", Source: "a", Target: "b"}},
	}
	p.ReplaceGraph(replacement)

	assert.Equal(t, 2, p.Version())
	assert.Equal(t, replacement, p.Graph())

	events := p.GetUncommittedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "playbook.graph_updated", events[0].GetEventType())
}

func TestMarkEventsAsCommittedClearsQueue(t *testing.T) {
	p, err := New("user-1", "Launch sequence", Graph{Nodes: []Node{{ID: "a"}}})
	require.NoError(t, err)

	require.NotEmpty(t, p.GetUncommittedEvents())
	p.MarkEventsAsCommitted()
	assert.Empty(t, p.GetUncommittedEvents())
}

func TestReconstructRaisesNoEvents(t *testing.T) {
	now := time.Now()
	p, err := Reconstruct("pb-1", "user-1", "Restored", Graph{Nodes: []Node{{ID: "a"}}}, now, now, 3)
	require.NoError(t, err)

	assert.Equal(t, ID("pb-1"), p.ID())
	assert.Equal(t, 3, p.Version())
	assert.Empty(t, p.GetUncommittedEvents())
}
