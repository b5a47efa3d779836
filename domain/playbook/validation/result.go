package validation

// Severity classifies a validation finding. Errors make the graph
// non-executable; warnings flag it for human review without blocking.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes form a closed vocabulary; consumers switch on them for
// inline editor annotation.
const (
	CodeEmptyGraph          = "EMPTY_GRAPH"
	CodeDuplicateKeys       = "DUPLICATE_KEYS"
	CodeInvalidEdges        = "INVALID_EDGES"
	CodeNoEntryPoint        = "NO_ENTRY_POINT"
	CodeMultipleEntryPoints = "MULTIPLE_ENTRY_POINTS"
	CodeOrphanedNodes       = "ORPHANED_NODES"
	CodeCyclicGraph         = "CYCLIC_GRAPH"
	CodeIncompleteBranch    = "INCOMPLETE_BRANCH"
)

// Issue is one structured validation finding.
type Issue struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	NodeID   string   `json:"nodeId,omitempty"`
	EdgeID   string   `json:"edgeId,omitempty"`
}

// Result is the full validation report for one graph.
// Errors repeats the messages of error-severity issues for legacy
// consumers; Issues is the authoritative machine-readable report.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
	Issues []Issue  `json:"issues"`
}

// HasErrors reports whether any error-severity issue was found.
func (r Result) HasErrors() bool {
	return !r.Valid
}

// newResult assembles a Result from an ordered issue list, deriving
// Valid and Errors so the two views can never disagree.
func newResult(issues []Issue) Result {
	r := Result{
		Valid:  true,
		Errors: []string{},
		Issues: issues,
	}
	if issues == nil {
		r.Issues = []Issue{}
	}
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			r.Valid = false
			r.Errors = append(r.Errors, issue.Message)
		}
	}
	return r
}
