package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// JournalEntry is one locally recorded push outcome.
type JournalEntry struct {
	ID        int64     `json:"id"`
	SampleID  string    `json:"sample_id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Outcome   string    `json:"outcome"`
	Changes   int       `json:"changes"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Journal keeps a local history of sync pushes so operators can review what
// this workstation sent without querying the server's audit trail.
type Journal struct {
	db *sql.DB
}

func NewJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal tables: %w", err)
	}

	return j, nil
}

func (j *Journal) initTables() error {
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sample_id TEXT NOT NULL,
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			outcome TEXT NOT NULL,
			changes INTEGER NOT NULL DEFAULT 0,
			message TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_journal_sample ON journal(sample_id);
		CREATE INDEX IF NOT EXISTS idx_journal_created ON journal(created_at);
	`)

	return err
}

// Record appends one push outcome to the journal.
func (j *Journal) Record(e *JournalEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	res, err := j.db.Exec(`
		INSERT INTO journal (sample_id, source, target, outcome, changes, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.SampleID, e.Source, e.Target, e.Outcome, e.Changes, e.Message, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}

	e.ID, _ = res.LastInsertId()
	return nil
}

// List returns the newest entries, most recent first. A limit <= 0 returns
// the last 50.
func (j *Journal) List(limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := j.db.Query(`
		SELECT id, sample_id, source, target, outcome, changes, message, created_at
		FROM journal
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.SampleID, &e.Source, &e.Target,
			&e.Outcome, &e.Changes, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}

	return entries, nil
}

// Clear removes every entry and reports how many were deleted.
func (j *Journal) Clear() (int64, error) {
	res, err := j.db.Exec(`DELETE FROM journal`)
	if err != nil {
		return 0, fmt.Errorf("clear journal: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}
