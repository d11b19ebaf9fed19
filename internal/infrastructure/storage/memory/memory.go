package memory

import (
	"context"
	"sync"
	"time"

	"labsync/internal/domain/sample"
)

const defaultAuditLimit = 100

// Repository is an in-memory sample store backing tests and single-node
// development runs. The postgres implementation is the production path.
// A single lock serializes mutations, which also serializes concurrent
// syncs of the same sample.
type Repository struct {
	mu          sync.RWMutex
	samples     map[string]*sample.Sample
	audits      map[string][]sample.AuditEntry
	nextID      int
	nextAuditID int
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		samples: make(map[string]*sample.Sample),
		audits:  make(map[string][]sample.AuditEntry),
	}
}

// FindBySampleID loads a sample by its business identifier.
func (r *Repository) FindBySampleID(_ context.Context, sampleID string) (*sample.Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.samples[sampleID]
	if !ok {
		return nil, sample.ErrNotFound
	}
	return s.Clone(), nil
}

// CreateOrGet inserts the sample unless one with the same business
// identifier already exists.
func (r *Repository) CreateOrGet(_ context.Context, s *sample.Sample) (*sample.Sample, error) {
	if s.SampleID == "" {
		return nil, sample.ErrMissingSampleID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.samples[s.SampleID]; ok {
		return existing.Clone(), nil
	}

	now := time.Now().UTC()
	stored := s.Clone()
	r.nextID++
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.samples[stored.SampleID] = stored

	return stored.Clone(), nil
}

// ApplyAndCommit runs mutate against the current row image and persists the
// result together with the audit entry. A mutate failure leaves the stored
// sample and the audit trail untouched.
func (r *Repository) ApplyAndCommit(_ context.Context, sampleID string, mutate sample.Mutate, audit *sample.AuditEntry) (*sample.Sample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.samples[sampleID]
	if !ok {
		return nil, sample.ErrNotFound
	}

	work := cur.Clone()
	if err := mutate(work); err != nil {
		return nil, err
	}
	work.UpdatedAt = time.Now().UTC()
	r.samples[sampleID] = work

	if audit != nil {
		entry := *audit
		r.nextAuditID++
		entry.ID = r.nextAuditID
		entry.SampleRef = work.ID
		entry.Changes = audit.Changes.Clone()
		if entry.Timestamp.IsZero() {
			entry.Timestamp = work.UpdatedAt
		}
		r.audits[sampleID] = append(r.audits[sampleID], entry)
	}

	return work.Clone(), nil
}

// AuditTrail returns the newest audit entries for a sample, most recent
// first.
func (r *Repository) AuditTrail(_ context.Context, sampleID string, limit int) ([]sample.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.samples[sampleID]; !ok {
		return nil, sample.ErrNotFound
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	trail := r.audits[sampleID]
	out := make([]sample.AuditEntry, 0, limit)
	for i := len(trail) - 1; i >= 0 && len(out) < limit; i-- {
		entry := trail[i]
		entry.Changes = trail[i].Changes.Clone()
		out = append(out, entry)
	}
	return out, nil
}
