package sample

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("sample not found")
	ErrMissingSampleID = errors.New("sample id is required")
)
