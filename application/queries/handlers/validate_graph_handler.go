// Package handlers implements the query handlers of the playbook
// service.
package handlers

import (
	"context"

	"playbook-backend/application/queries"
	"playbook-backend/domain/playbook/validation"
)

// ValidateGraphHandler handles ValidateGraphQuery.
type ValidateGraphHandler struct{}

// NewValidateGraphHandler creates a new validate-graph handler.
func NewValidateGraphHandler() *ValidateGraphHandler {
	return &ValidateGraphHandler{}
}

// Handle runs the validator and returns its report. It never fails:
// an invalid graph is a successful validation with Valid=false.
func (h *ValidateGraphHandler) Handle(_ context.Context, q queries.ValidateGraphQuery) (interface{}, error) {
	return validation.Validate(q.Graph), nil
}
