// Package validation implements the structural checker for playbook
// graphs. Validation is a pure function over the graph value: it never
// mutates its input, never panics for well-typed input, and reports
// every anomaly as an Issue rather than an error return.
package validation

import (
	"fmt"
	"strings"

	"playbook-backend/domain/playbook"
)

// Traversal colors for cycle detection.
const (
	colorUnvisited = iota
	colorInProgress
	colorDone
)

// Validate runs all structural checks against the graph and merges
// their findings into one report. Checks append issues in a fixed
// order (shape, entry point, reachability, cycle, branch completeness)
// so the report is deterministic for identical input.
//
// Runtime is linear in nodes+edges: reachability and cycle analysis
// each traverse the graph once.
func Validate(g playbook.Graph) Result {
	// An empty graph short-circuits: every other check is meaningless
	// on zero nodes.
	if len(g.Nodes) == 0 {
		return newResult([]Issue{{
			Code:     CodeEmptyGraph,
			Severity: SeverityError,
			Message:  "Graph must have at least one node",
		}})
	}

	var issues []Issue

	v := newGraphView(g)

	if issue, ok := v.duplicateKeysIssue(); ok {
		issues = append(issues, issue)
	}
	if issue, ok := v.invalidEdgesIssue(); ok {
		issues = append(issues, issue)
	}

	entry, entryIssue := v.findEntryPoint()
	if entryIssue != nil {
		issues = append(issues, *entryIssue)
	}

	// Reachability is only defined under a unique entry point; with
	// zero or multiple candidates it is skipped to avoid compounding
	// errors.
	if entryIssue == nil {
		if issue, ok := v.orphanedNodesIssue(entry); ok {
			issues = append(issues, issue)
		}
	}

	// Cycle analysis runs regardless of the entry-point outcome: a
	// cycle is a defect even in a multi-entry or entry-less graph.
	if issue, ok := v.cycleIssue(); ok {
		issues = append(issues, issue)
	}

	issues = append(issues, v.incompleteBranchIssues()...)

	return newResult(issues)
}

// graphView is the arena-style working form of a graph: a first-seen
// node order, an id-to-index lookup built once per call, and adjacency
// lists restricted to edges whose endpoints both resolve. Dangling
// edges are excluded so they cannot manufacture a false cycle or a
// false entry point downstream.
type graphView struct {
	graph        playbook.Graph
	order        []string       // node ids, first occurrence, input order
	index        map[string]int // node id -> position in order
	adjacency    [][]int        // outgoing neighbors per node index
	indegree     []int
	duplicateIDs []string
	invalidEdges []playbook.Edge
}

func newGraphView(g playbook.Graph) *graphView {
	v := &graphView{
		graph: g,
		index: make(map[string]int, len(g.Nodes)),
	}

	dupSeen := make(map[string]bool)
	for _, node := range g.Nodes {
		if _, exists := v.index[node.ID]; exists {
			// Downstream checks use the first-seen view; the
			// duplicate still stands as its own error.
			if !dupSeen[node.ID] {
				dupSeen[node.ID] = true
				v.duplicateIDs = append(v.duplicateIDs, node.ID)
			}
			continue
		}
		v.index[node.ID] = len(v.order)
		v.order = append(v.order, node.ID)
	}

	v.adjacency = make([][]int, len(v.order))
	v.indegree = make([]int, len(v.order))
	for _, edge := range g.Edges {
		src, srcOK := v.index[edge.Source]
		dst, dstOK := v.index[edge.Target]
		if !srcOK || !dstOK {
			v.invalidEdges = append(v.invalidEdges, edge)
			continue
		}
		v.adjacency[src] = append(v.adjacency[src], dst)
		v.indegree[dst]++
	}

	return v
}

func (v *graphView) duplicateKeysIssue() (Issue, bool) {
	if len(v.duplicateIDs) == 0 {
		return Issue{}, false
	}
	issue := Issue{
		Code:     CodeDuplicateKeys,
		Severity: SeverityError,
		Message:  fmt.Sprintf("Duplicate node ids: %s", strings.Join(v.duplicateIDs, ", ")),
	}
	if len(v.duplicateIDs) == 1 {
		issue.NodeID = v.duplicateIDs[0]
	}
	return issue, true
}

func (v *graphView) invalidEdgesIssue() (Issue, bool) {
	if len(v.invalidEdges) == 0 {
		return Issue{}, false
	}
	refs := make([]string, len(v.invalidEdges))
	for i, edge := range v.invalidEdges {
		refs[i] = edgeRef(edge)
	}
	issue := Issue{
		Code:     CodeInvalidEdges,
		Severity: SeverityError,
		Message:  fmt.Sprintf("Edges reference unknown nodes: %s", strings.Join(refs, ", ")),
	}
	if len(v.invalidEdges) == 1 {
		issue.EdgeID = v.invalidEdges[0].ID
	}
	return issue, true
}

// findEntryPoint returns the index of the unique in-degree-zero node,
// or an issue when there are zero or multiple candidates.
func (v *graphView) findEntryPoint() (int, *Issue) {
	var candidates []int
	for i := range v.order {
		if v.indegree[i] == 0 {
			candidates = append(candidates, i)
		}
	}

	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		// Every node has an incoming edge, e.g. the whole graph is
		// one cycle.
		return -1, &Issue{
			Code:     CodeNoEntryPoint,
			Severity: SeverityError,
			Message:  "Graph has no entry point: every node has an incoming connection",
		}
	default:
		ids := make([]string, len(candidates))
		for i, c := range candidates {
			ids[i] = v.order[c]
		}
		return -1, &Issue{
			Code:     CodeMultipleEntryPoints,
			Severity: SeverityError,
			Message:  fmt.Sprintf("Graph has multiple entry points: %s", strings.Join(ids, ", ")),
		}
	}
}

// orphanedNodesIssue walks forward from the entry point and reports
// every node the traversal never reaches. A single node with no edges
// is trivially reachable as the entry itself.
func (v *graphView) orphanedNodesIssue(entry int) (Issue, bool) {
	visited := make([]bool, len(v.order))
	queue := []int{entry}
	visited[entry] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range v.adjacency[current] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	var orphans []string
	for i, id := range v.order {
		if !visited[i] {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) == 0 {
		return Issue{}, false
	}

	issue := Issue{
		Code:     CodeOrphanedNodes,
		Severity: SeverityError,
		Message:  fmt.Sprintf("Nodes not reachable from the entry point: %s", strings.Join(orphans, ", ")),
	}
	if len(orphans) == 1 {
		issue.NodeID = orphans[0]
	}
	return issue, true
}

// cycleIssue detects a directed cycle with a three-state depth-first
// search over the filtered adjacency, driven by an explicit stack so
// pathological graphs cannot exhaust the call stack. Nodes are visited
// in input order and the search stops at the first cycle found; one
// report is sufficient.
func (v *graphView) cycleIssue() (Issue, bool) {
	colors := make([]int, len(v.order))

	type frame struct {
		node int
		next int // index of the next neighbor to expand
	}

	for start := range v.order {
		if colors[start] != colorUnvisited {
			continue
		}
		stack := []frame{{node: start}}
		colors[start] = colorInProgress

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(v.adjacency[top.node]) {
				neighbor := v.adjacency[top.node][top.next]
				top.next++
				switch colors[neighbor] {
				case colorInProgress:
					return Issue{
						Code:     CodeCyclicGraph,
						Severity: SeverityError,
						Message:  "Graph contains a cycle; workflows must be acyclic",
						NodeID:   v.order[neighbor],
					}, true
				case colorUnvisited:
					colors[neighbor] = colorInProgress
					stack = append(stack, frame{node: neighbor})
				}
				continue
			}
			colors[top.node] = colorDone
			stack = stack[:len(stack)-1]
		}
	}

	return Issue{}, false
}

// incompleteBranchIssues checks that every BRANCH node fans out on the
// full binary outcome set {"true", "false"}. A missing outcome is
// suspicious but not fatal, so these are warnings, one per node.
func (v *graphView) incompleteBranchIssues() []Issue {
	var issues []Issue

	reported := make(map[string]bool)
	for _, node := range v.graph.Nodes {
		if node.Kind != playbook.KindBranch || reported[node.ID] {
			continue
		}
		reported[node.ID] = true

		var hasTrue, hasFalse bool
		for _, edge := range v.graph.Edges {
			if edge.Source != node.ID {
				continue
			}
			if _, valid := v.index[edge.Target]; !valid {
				continue
			}
			switch strings.ToLower(strings.TrimSpace(edge.Label)) {
			case "true":
				hasTrue = true
			case "false":
				hasFalse = true
			}
		}
		if hasTrue && hasFalse {
			continue
		}

		var missing []string
		if !hasTrue {
			missing = append(missing, `"true"`)
		}
		if !hasFalse {
			missing = append(missing, `"false"`)
		}
		issues = append(issues, Issue{
			Code:     CodeIncompleteBranch,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Branch node %q has no outgoing edge labeled %s", node.ID, strings.Join(missing, " or ")),
			NodeID:   node.ID,
		})
	}

	return issues
}

func edgeRef(e playbook.Edge) string {
	if e.ID != "" {
		return e.ID
	}
	return e.Source + "->" + e.Target
}
