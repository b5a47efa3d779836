// Package commands defines the state-changing operations of the
// playbook service.
package commands

import (
	"fmt"

	"playbook-backend/domain/playbook"
)

// CreatePlaybookCommand creates a new playbook from an editor graph.
// The playbook id is generated by the caller so it can be returned to
// the client immediately.
type CreatePlaybookCommand struct {
	PlaybookID string
	UserID     string
	Name       string
	Graph      playbook.Graph
}

// Validate checks the command's required fields.
func (c CreatePlaybookCommand) Validate() error {
	if c.PlaybookID == "" {
		return fmt.Errorf("playbookID is required")
	}
	if c.UserID == "" {
		return fmt.Errorf("userID is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
