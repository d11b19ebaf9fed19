package sync

import (
	"errors"
)

var (
	ErrSameSystem = errors.New("source and target systems must be different")
)

// errAlreadySynced aborts the reconciliation transaction when the locked row
// turns out to be synced already. It never leaves the package.
var errAlreadySynced = errors.New("already synced")
