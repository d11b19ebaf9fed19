package sample

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// System identifies one of the two laboratory systems taking part in a sync.
type System string

const (
	SystemLIMS System = "lims"
	SystemELN  System = "eln"
)

func (System) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(SystemLIMS),
			string(SystemELN),
		},
		Description: "Laboratory system identifier",
		Examples:    []any{SystemLIMS},
	}
}

// Validate implements the huma.Validatable interface.
func (s System) Validate() error {
	switch s {
	case SystemLIMS, SystemELN:
		return nil
	}
	return fmt.Errorf("unknown system: %s", s)
}

// String returns the wire representation of the system.
func (s System) String() string {
	return string(s)
}
