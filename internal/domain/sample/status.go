package sample

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Status is the lifecycle state of a sample.
type Status string

const (
	StatusRegistered Status = "registered"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusArchived   Status = "archived"
)

func (Status) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(StatusRegistered),
			string(StatusInProgress),
			string(StatusCompleted),
			string(StatusFailed),
			string(StatusArchived),
		},
		Description: "Sample lifecycle status",
		Examples:    []any{StatusRegistered},
	}
}

// Validate implements the huma.Validatable interface.
func (s Status) Validate() error {
	switch s {
	case StatusRegistered, StatusInProgress, StatusCompleted, StatusFailed, StatusArchived:
		return nil
	}
	return fmt.Errorf("unknown sample status: %s", s)
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
