package validation

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Level selects how deep the validation pipeline digs. Tiers are strictly
// additive: standard runs everything basic does, full runs everything.
type Level string

const (
	LevelBasic    Level = "basic"
	LevelStandard Level = "standard"
	LevelFull     Level = "full"
)

func (Level) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(LevelBasic),
			string(LevelStandard),
			string(LevelFull),
		},
		Description: "Validation depth",
		Examples:    []any{LevelStandard},
	}
}

// Validate implements the huma.Validatable interface.
func (l Level) Validate() error {
	switch l {
	case LevelBasic, LevelStandard, LevelFull:
		return nil
	}
	return fmt.Errorf("unknown validation level: %s", l)
}

// String returns the wire representation of the level.
func (l Level) String() string {
	return string(l)
}

func (l Level) rank() int {
	switch l {
	case LevelBasic:
		return 0
	case LevelFull:
		return 2
	default:
		return 1
	}
}

func (l Level) atLeast(other Level) bool {
	return l.rank() >= other.rank()
}
