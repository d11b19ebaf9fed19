package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"labsync/internal/domain/sample"
)

const defaultAuditLimit = 100

const sampleColumns = `
	id, sample_id, batch_number, sample_type, source_location, collection_date,
	status, lims_id, eln_id, lims_synced, eln_synced, metadata,
	created_at, updated_at, created_by, updated_by`

// SampleRepository is the Postgres implementation of sample.Repository.
// Same-sample writes are serialized with a SELECT ... FOR UPDATE row lock
// inside ApplyAndCommit.
type SampleRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSampleRepository(pool *pgxpool.Pool, log *slog.Logger) *SampleRepository {
	return &SampleRepository{
		pool: pool,
		log:  log.With("component", "sample_repository"),
	}
}

func (r *SampleRepository) FindBySampleID(ctx context.Context, sampleID string) (*sample.Sample, error) {
	query := `SELECT` + sampleColumns + `
		FROM samples
		WHERE sample_id = $1`

	row := r.pool.QueryRow(ctx, query, sampleID)

	s, err := r.scanSample(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sample.ErrNotFound
		}
		r.log.Error("failed to find sample", "sample_id", sampleID, "error", err)
		return nil, fmt.Errorf("find sample: %w", err)
	}

	return s, nil
}

func (r *SampleRepository) CreateOrGet(ctx context.Context, s *sample.Sample) (*sample.Sample, error) {
	if s.SampleID == "" {
		return nil, sample.ErrMissingSampleID
	}

	query := `
		INSERT INTO samples (sample_id, batch_number, sample_type, source_location,
		                     collection_date, status, lims_id, eln_id, lims_synced,
		                     eln_synced, metadata, created_by, updated_by)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6,
		        NULLIF($7, ''), NULLIF($8, ''), $9, $10, COALESCE($11, '{}'::jsonb),
		        NULLIF($12, ''), NULLIF($13, ''))
		ON CONFLICT (sample_id) DO NOTHING
		RETURNING` + sampleColumns

	row := r.pool.QueryRow(ctx, query,
		s.SampleID,
		s.BatchNumber,
		s.SampleType,
		s.SourceLocation,
		s.CollectionDate,
		s.Status.String(),
		s.LIMSID,
		s.ELNID,
		s.LIMSSynced,
		s.ELNSynced,
		s.Metadata,
		s.CreatedBy,
		s.UpdatedBy,
	)

	created, err := r.scanSample(row)
	if err != nil {
		// No row back means the sample already existed.
		if errors.Is(err, sql.ErrNoRows) {
			return r.FindBySampleID(ctx, s.SampleID)
		}
		r.log.Error("failed to create sample", "sample_id", s.SampleID, "error", err)
		return nil, fmt.Errorf("create sample: %w", err)
	}

	return created, nil
}

func (r *SampleRepository) ApplyAndCommit(ctx context.Context, sampleID string, mutate sample.Mutate, audit *sample.AuditEntry) (*sample.Sample, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.log.Error("failed to begin transaction", "sample_id", sampleID, "error", err)
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT` + sampleColumns + `
		FROM samples
		WHERE sample_id = $1
		FOR UPDATE`

	cur, err := r.scanSample(tx.QueryRow(ctx, query, sampleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sample.ErrNotFound
		}
		r.log.Error("failed to lock sample", "sample_id", sampleID, "error", err)
		return nil, fmt.Errorf("lock sample: %w", err)
	}

	// The caller decides what a mutate failure means; the row stays put.
	if err := mutate(cur); err != nil {
		return nil, err
	}
	cur.UpdatedAt = time.Now().UTC()

	update := `
		UPDATE samples
		SET batch_number = NULLIF($1, ''), sample_type = NULLIF($2, ''),
		    source_location = NULLIF($3, ''), collection_date = $4, status = $5,
		    lims_id = NULLIF($6, ''), eln_id = NULLIF($7, ''), lims_synced = $8,
		    eln_synced = $9, metadata = COALESCE($10, '{}'::jsonb),
		    updated_at = $11, updated_by = NULLIF($12, '')
		WHERE id = $13`

	_, err = tx.Exec(ctx, update,
		cur.BatchNumber,
		cur.SampleType,
		cur.SourceLocation,
		cur.CollectionDate,
		cur.Status.String(),
		cur.LIMSID,
		cur.ELNID,
		cur.LIMSSynced,
		cur.ELNSynced,
		cur.Metadata,
		cur.UpdatedAt,
		cur.UpdatedBy,
		cur.ID,
	)
	if err != nil {
		r.log.Error("failed to update sample", "sample_id", sampleID, "error", err)
		return nil, fmt.Errorf("update sample: %w", err)
	}

	if audit != nil {
		audit.SampleRef = cur.ID
		if audit.Timestamp.IsZero() {
			audit.Timestamp = cur.UpdatedAt
		}

		insert := `
			INSERT INTO audit_logs (sample_id, event_type, action, resource,
			                        user_id, changes, system_source, timestamp)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''),
			        COALESCE($6, '{}'::jsonb), NULLIF($7, ''), $8)
			RETURNING id`

		err = tx.QueryRow(ctx, insert,
			audit.SampleRef,
			audit.EventType,
			audit.Action,
			audit.Resource,
			audit.UserID,
			audit.Changes,
			audit.Source,
			audit.Timestamp,
		).Scan(&audit.ID)
		if err != nil {
			r.log.Error("failed to write audit entry", "sample_id", sampleID, "error", err)
			return nil, fmt.Errorf("write audit entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit", "sample_id", sampleID, "error", err)
		return nil, fmt.Errorf("commit: %w", err)
	}

	return cur, nil
}

func (r *SampleRepository) AuditTrail(ctx context.Context, sampleID string, limit int) ([]sample.AuditEntry, error) {
	if _, err := r.FindBySampleID(ctx, sampleID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	query := `
		SELECT a.id, a.sample_id, a.event_type, a.action, a.resource,
		       a.user_id, a.changes, a.system_source, a.timestamp
		FROM audit_logs a
		JOIN samples s ON s.id = a.sample_id
		WHERE s.sample_id = $1
		ORDER BY a.timestamp DESC, a.id DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, sampleID, limit)
	if err != nil {
		r.log.Error("failed to load audit trail", "sample_id", sampleID, "error", err)
		return nil, fmt.Errorf("load audit trail: %w", err)
	}
	defer rows.Close()

	var entries []sample.AuditEntry
	for rows.Next() {
		var e sample.AuditEntry
		var resource, userID, source sql.NullString

		err := rows.Scan(&e.ID, &e.SampleRef, &e.EventType, &e.Action, &resource,
			&userID, &e.Changes, &source, &e.Timestamp)
		if err != nil {
			r.log.Error("failed to scan audit entry", "sample_id", sampleID, "error", err)
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Resource = resource.String
		e.UserID = userID.String
		e.Source = source.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit trail: %w", err)
	}

	return entries, nil
}

func (r *SampleRepository) scanSample(row interface{ Scan(dest ...interface{}) error }) (*sample.Sample, error) {
	var s sample.Sample
	var batchNumber, sampleType, sourceLocation, limsID, elnID, createdBy, updatedBy sql.NullString
	var collectionDate, limsSynced, elnSynced sql.NullTime
	var status string

	err := row.Scan(
		&s.ID,
		&s.SampleID,
		&batchNumber,
		&sampleType,
		&sourceLocation,
		&collectionDate,
		&status,
		&limsID,
		&elnID,
		&limsSynced,
		&elnSynced,
		&s.Metadata,
		&s.CreatedAt,
		&s.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	s.BatchNumber = batchNumber.String
	s.SampleType = sampleType.String
	s.SourceLocation = sourceLocation.String
	s.LIMSID = limsID.String
	s.ELNID = elnID.String
	s.CreatedBy = createdBy.String
	s.UpdatedBy = updatedBy.String
	s.Status = sample.Status(status)
	if collectionDate.Valid {
		s.CollectionDate = &collectionDate.Time
	}
	if limsSynced.Valid {
		s.LIMSSynced = &limsSynced.Time
	}
	if elnSynced.Valid {
		s.ELNSynced = &elnSynced.Time
	}

	return &s, nil
}
