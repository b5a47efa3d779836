package playbook

// NodeKind identifies what a workflow step does when executed.
// The validator treats every kind as opaque except KindBranch,
// which carries conditional fan-out rules.
type NodeKind string

const (
	KindAgent  NodeKind = "AGENT"
	KindData   NodeKind = "DATA"
	KindBranch NodeKind = "BRANCH"
	KindAPI    NodeKind = "API"
)

// Position holds the editor canvas coordinates of a node.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData carries the presentational and behavioral payload of a node.
// It is opaque to structural validation.
type NodeData struct {
	Label  string                 `json:"label"`
	Config map[string]interface{} `json:"config,omitempty"`
}

// Node is a single step in a playbook graph.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Edge is a directed execution-order dependency between two node ids.
// Source and Target may reference ids absent from the node set; that is
// a validation finding, not a precondition violation.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// Graph is the workflow structure produced by the visual editor.
// It is a plain value: flat node and edge slices with string ids,
// no back-pointers between records. The validator never mutates it.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g Graph) EdgeCount() int {
	return len(g.Edges)
}
