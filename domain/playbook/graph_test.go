package playbook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphDecodesEditorPayload(t *testing.T) {
	payload := `{
		"nodes": [
			{"id": "n1", "type": "AGENT", "position": {"x": 100, "y": 50}, "data": {"label": "Draft post", "config": {"model": "default"}}},
			{"id": "n2", "type": "BRANCH", "position": {"x": 300, "y": 50}, "data": {"label": "Approved?"}}
		],
		"edges": [
			{"id": "e1", "source": "n1", "target": "n2"},
			{"id": "e2", "source": "n2", "target": "n1", "label": "false"}
		]
	}`

	var g Graph
	require.NoError(t, json.Unmarshal([]byte(payload), &g))

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "n1", g.Nodes[0].ID)
	assert.Equal(t, KindAgent, g.Nodes[0].Kind)
	assert.Equal(t, 100.0, g.Nodes[0].Position.X)
	assert.Equal(t, "Draft post", g.Nodes[0].Data.Label)
	assert.Equal(t, "default", g.Nodes[0].Data.Config["model"])
	assert.Equal(t, KindBranch, g.Nodes[1].Kind)

	require.Len(t, g.Edges, 2)
	assert.Equal(t, "n2", g.Edges[0].Target)
	assert.Equal(t, "false", g.Edges[1].Label)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraphRoundTripPreservesStructure(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "a", Kind: KindData, Position: Position{X: 1, Y: 2}, Data: NodeData{Label: "Fetch"}},
		},
		Edges: []Edge{
			{ID: "e", Source: "a", Target: "b", Label: "true"},
		},
	}

	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded Graph
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, g, decoded)
}
