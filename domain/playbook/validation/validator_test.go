package validation

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playbook-backend/domain/playbook"
)

func node(id string) playbook.Node {
	return playbook.Node{ID: id, Kind: playbook.KindAgent}
}

func branchNode(id string) playbook.Node {
	return playbook.Node{ID: id, Kind: playbook.KindBranch}
}

func edge(source, target string) playbook.Edge {
	return playbook.Edge{ID: source + "-" + target, Source: source, Target: target}
}

func labeledEdge(source, target, label string) playbook.Edge {
	e := edge(source, target)
	e.Label = label
	return e
}

func codes(r Result) []string {
	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.Code
	}
	return out
}

func findIssue(t *testing.T, r Result, code string) Issue {
	t.Helper()
	for _, issue := range r.Issues {
		if issue.Code == code {
			return issue
		}
	}
	t.Fatalf("no issue with code %s in %v", code, codes(r))
	return Issue{}
}

func TestValidate_EmptyGraph(t *testing.T) {
	result := Validate(playbook.Graph{})

	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1, "no other check should run on an empty graph")
	assert.Equal(t, CodeEmptyGraph, result.Issues[0].Code)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Equal(t, []string{"Graph must have at least one node"}, result.Errors)
}

func TestValidate_SingleNode(t *testing.T) {
	result := Validate(playbook.Graph{Nodes: []playbook.Node{node("a")}})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Errors)
}

func TestValidate_LinearChain(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b"), node("c")},
		Edges: []playbook.Edge{edge("a", "b"), edge("b", "c")},
	}

	result := Validate(g)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidate_DiamondDAG(t *testing.T) {
	// Two parallel branches re-joining on a shared sink is not a cycle.
	g := playbook.Graph{
		Nodes: []playbook.Node{node("start"), node("b1"), node("b2"), node("end")},
		Edges: []playbook.Edge{
			edge("start", "b1"),
			edge("start", "b2"),
			edge("b1", "end"),
			edge("b2", "end"),
		},
	}

	result := Validate(g)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidate_DuplicateNodeIDs(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("a"), node("b")},
		Edges: []playbook.Edge{edge("a", "b")},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	issue := findIssue(t, result, CodeDuplicateKeys)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, "a", issue.NodeID)
}

func TestValidate_DanglingEdge(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a")},
		Edges: []playbook.Edge{edge("a", "ghost")},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	issue := findIssue(t, result, CodeInvalidEdges)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, "a-ghost", issue.EdgeID)
	assert.Contains(t, issue.Message, "a-ghost")

	// The dangling edge is excluded from adjacency, so it cannot
	// manufacture a second defect.
	assert.Equal(t, []string{CodeInvalidEdges}, codes(result))
}

func TestValidate_NoEntryPoint(t *testing.T) {
	// A pure two-node cycle: every node has an incoming edge.
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b")},
		Edges: []playbook.Edge{edge("a", "b"), edge("b", "a")},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	findIssue(t, result, CodeNoEntryPoint)
	findIssue(t, result, CodeCyclicGraph)
}

func TestValidate_MultipleEntryPoints(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b"), node("c")},
		Edges: []playbook.Edge{edge("a", "c"), edge("b", "c")},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	issue := findIssue(t, result, CodeMultipleEntryPoints)
	assert.Contains(t, issue.Message, "a")
	assert.Contains(t, issue.Message, "b")
}

func TestValidate_ThreeNodeCycle(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("start"), node("a"), node("b"), node("c")},
		Edges: []playbook.Edge{
			edge("start", "a"),
			edge("a", "b"),
			edge("b", "c"),
			edge("c", "a"),
		},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	issue := findIssue(t, result, CodeCyclicGraph)
	assert.NotEmpty(t, issue.NodeID)
}

func TestValidate_SelfLoop(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("start"), node("a")},
		Edges: []playbook.Edge{edge("start", "a"), edge("a", "a")},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	issue := findIssue(t, result, CodeCyclicGraph)
	assert.Equal(t, "a", issue.NodeID)
}

func TestValidate_OrphanedNodes(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b"), node("c")},
		Edges: []playbook.Edge{edge("a", "b")},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	issue := findIssue(t, result, CodeOrphanedNodes)
	assert.Equal(t, "c", issue.NodeID)
}

func TestValidate_NoOrphansWhenFullyConnected(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b"), node("c")},
		Edges: []playbook.Edge{edge("a", "b"), edge("a", "c")},
	}

	result := Validate(g)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidate_OrphanCheckSkippedWithoutUniqueEntry(t *testing.T) {
	// Two disconnected components mean two entry points; reachability
	// is undefined, so only the entry-point error is reported.
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b"), node("c"), node("d")},
		Edges: []playbook.Edge{edge("a", "b"), edge("c", "d")},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{CodeMultipleEntryPoints}, codes(result))
}

func TestValidate_IncompleteBranch(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{branchNode("check"), node("yes")},
		Edges: []playbook.Edge{labeledEdge("check", "yes", "true")},
	}

	result := Validate(g)

	assert.True(t, result.Valid, "a warning must not flip valid to false")
	assert.Empty(t, result.Errors)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, CodeIncompleteBranch, issue.Code)
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, "check", issue.NodeID)
	assert.Contains(t, issue.Message, `"false"`)
}

func TestValidate_CompleteBranch(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{branchNode("check"), node("yes"), node("no")},
		Edges: []playbook.Edge{
			labeledEdge("check", "yes", "true"),
			labeledEdge("check", "no", "false"),
		},
	}

	result := Validate(g)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidate_BranchLabelsNormalized(t *testing.T) {
	// Labels are matched case-insensitively with surrounding space
	// trimmed, matching what editors actually emit.
	g := playbook.Graph{
		Nodes: []playbook.Node{branchNode("check"), node("yes"), node("no")},
		Edges: []playbook.Edge{
			labeledEdge("check", "yes", " TRUE "),
			labeledEdge("check", "no", "False"),
		},
	}

	result := Validate(g)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidate_BranchEdgeToUnknownNodeDoesNotCount(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{branchNode("check"), node("yes")},
		Edges: []playbook.Edge{
			labeledEdge("check", "yes", "true"),
			labeledEdge("check", "ghost", "false"),
		},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	findIssue(t, result, CodeInvalidEdges)
	warning := findIssue(t, result, CodeIncompleteBranch)
	assert.Equal(t, "check", warning.NodeID)
}

func TestValidate_IssueOrderIsFixed(t *testing.T) {
	// Shape findings come before entry-point findings, which come
	// before cycle findings.
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("a"), node("b")},
		Edges: []playbook.Edge{
			edge("a", "ghost"),
			edge("a", "b"),
			edge("b", "a"),
		},
	}

	result := Validate(g)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		CodeDuplicateKeys,
		CodeInvalidEdges,
		CodeNoEntryPoint,
		CodeCyclicGraph,
	}, codes(result))
}

func TestValidate_Deterministic(t *testing.T) {
	graphs := []playbook.Graph{
		{},
		{Nodes: []playbook.Node{node("a")}},
		{
			Nodes: []playbook.Node{node("a"), node("a"), branchNode("b"), node("c")},
			Edges: []playbook.Edge{
				edge("a", "ghost"),
				labeledEdge("b", "c", "true"),
				edge("c", "b"),
			},
		},
	}

	for i, g := range graphs {
		t.Run(fmt.Sprintf("graph_%d", i), func(t *testing.T) {
			first, err := json.Marshal(Validate(g))
			require.NoError(t, err)
			second, err := json.Marshal(Validate(g))
			require.NoError(t, err)
			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b"), branchNode("c")},
		Edges: []playbook.Edge{edge("a", "b"), labeledEdge("b", "c", "true")},
	}
	before, err := json.Marshal(g)
	require.NoError(t, err)

	Validate(g)

	after, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestValidate_AddingDefectNeverRepairs(t *testing.T) {
	invalid := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b")},
		Edges: []playbook.Edge{edge("a", "b"), edge("b", "a")},
	}
	require.False(t, Validate(invalid).Valid)

	// Pile on a duplicate id and a dangling edge; the graph must stay
	// invalid.
	invalid.Nodes = append(invalid.Nodes, node("a"))
	invalid.Edges = append(invalid.Edges, edge("a", "ghost"))
	assert.False(t, Validate(invalid).Valid)
}

func TestValidate_ValidDerivedFromIssues(t *testing.T) {
	g := playbook.Graph{
		Nodes: []playbook.Node{node("a"), node("b"), node("c")},
		Edges: []playbook.Edge{edge("a", "b")},
	}

	result := Validate(g)

	hasError := false
	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			hasError = true
		}
	}
	assert.Equal(t, !hasError, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, result.Issues[0].Message, result.Errors[0])
}
