package commands

import "fmt"

// DeletePlaybookCommand removes a playbook.
type DeletePlaybookCommand struct {
	PlaybookID string
	UserID     string
}

// Validate checks the command's required fields.
func (c DeletePlaybookCommand) Validate() error {
	if c.PlaybookID == "" {
		return fmt.Errorf("playbookID is required")
	}
	if c.UserID == "" {
		return fmt.Errorf("userID is required")
	}
	return nil
}
