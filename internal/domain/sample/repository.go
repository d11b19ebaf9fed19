package sample

import (
	"context"
)

// Mutate is applied to the current row image inside a repository
// transaction. Returning an error aborts the transaction.
type Mutate func(s *Sample) error

// Repository persists samples and their audit trail.
type Repository interface {
	// FindBySampleID loads a sample by its business identifier.
	// Returns ErrNotFound when no such sample exists.
	FindBySampleID(ctx context.Context, sampleID string) (*Sample, error)

	// CreateOrGet inserts the sample unless one with the same business
	// identifier already exists, in which case the existing row is
	// returned untouched.
	CreateOrGet(ctx context.Context, s *Sample) (*Sample, error)

	// ApplyAndCommit re-reads the sample under a row lock, runs mutate
	// against the fresh image, then persists the mutated sample and the
	// audit entry in the same transaction. The mutate callback may fill
	// in audit fields; the entry is written only after mutate returns.
	// Any failure rolls the whole transaction back.
	ApplyAndCommit(ctx context.Context, sampleID string, mutate Mutate, audit *AuditEntry) (*Sample, error)

	// AuditTrail returns the newest audit entries for a sample, most
	// recent first. A limit <= 0 applies a server-side default.
	AuditTrail(ctx context.Context, sampleID string, limit int) ([]AuditEntry, error)
}
