package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"labsync/internal/app/client/config"
)

// App wires the client pieces together: configuration, the typed HTTP
// client for the labsync API and the local push journal.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	journal    *Journal
	apiKey     string
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}

	journal, err := NewJournal(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("init journal: %w", err)
	}

	apiKey, err := loadAPIKey(cfg.CredentialsPath)
	if err != nil {
		log.Warn("failed to load stored credentials", "error", err)
	}
	if apiKey != "" {
		httpCl.SetAPIKey(apiKey)
	}

	return &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		journal:    journal,
		apiKey:     apiKey,
	}, nil
}

func (a *App) Close() error {
	return a.journal.Close()
}

// IsConfigured reports whether an API key has been stored.
func (a *App) IsConfigured() bool {
	return a.apiKey != ""
}

// SaveAPIKey stores the service API key and uses it from now on.
func (a *App) SaveAPIKey(key string) error {
	if err := saveAPIKey(a.config.CredentialsPath, key); err != nil {
		return err
	}
	a.apiKey = key
	a.httpClient.SetAPIKey(key)
	return nil
}

// CheckConnection verifies the server is reachable.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// SyncSample pushes one sample payload and records the outcome in the
// journal. Journal failures are logged, not returned: the sync already
// happened on the server.
func (a *App) SyncSample(ctx context.Context, req SyncRequest) (*SyncResponse, error) {
	resp, err := a.httpClient.SyncSample(ctx, req)
	if err != nil {
		return nil, err
	}

	entry := &JournalEntry{
		SampleID: resp.SampleID,
		Source:   resp.SourceSystem,
		Target:   resp.TargetSystem,
		Outcome:  resp.Outcome,
		Changes:  resp.ChangesApplied,
		Message:  resp.Message,
	}
	if err := a.journal.Record(entry); err != nil {
		a.log.Warn("failed to journal sync outcome", "sample_id", resp.SampleID, "error", err)
	}

	return resp, nil
}

// BatchSync pushes a batch of sample ids and journals every item result.
func (a *App) BatchSync(ctx context.Context, req BatchSyncRequest) (*BatchSyncResponse, error) {
	resp, err := a.httpClient.BatchSync(ctx, req)
	if err != nil {
		return nil, err
	}

	for _, r := range resp.Results {
		entry := &JournalEntry{
			SampleID: r.SampleID,
			Source:   r.SourceSystem,
			Target:   r.TargetSystem,
			Outcome:  r.Outcome,
			Changes:  r.ChangesApplied,
			Message:  r.Message,
		}
		if err := a.journal.Record(entry); err != nil {
			a.log.Warn("failed to journal sync outcome", "sample_id", r.SampleID, "error", err)
		}
	}

	return resp, nil
}

// SyncStatus fetches the sync state of one sample.
func (a *App) SyncStatus(ctx context.Context, sampleID string) (*StatusResponse, error) {
	return a.httpClient.SyncStatus(ctx, sampleID)
}

// Validate runs the server's tiered checks on one payload.
func (a *App) Validate(ctx context.Context, req ValidationRequest) (*ValidationResponse, error) {
	return a.httpClient.Validate(ctx, req)
}

// Journal exposes the local push history.
func (a *App) Journal() *Journal {
	return a.journal
}
