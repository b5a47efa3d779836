package commands

import (
	"fmt"

	"playbook-backend/domain/playbook"
)

// UpdatePlaybookGraphCommand replaces the workflow graph of an
// existing playbook.
type UpdatePlaybookGraphCommand struct {
	PlaybookID string
	UserID     string
	Graph      playbook.Graph
}

// Validate checks the command's required fields.
func (c UpdatePlaybookGraphCommand) Validate() error {
	if c.PlaybookID == "" {
		return fmt.Errorf("playbookID is required")
	}
	if c.UserID == "" {
		return fmt.Errorf("userID is required")
	}
	return nil
}
