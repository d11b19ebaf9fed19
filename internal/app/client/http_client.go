package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"labsync/internal/app/client/config"
)

// apiKeyHeader must match the header the server's auth middleware reads.
const apiKeyHeader = "X-API-Key"

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	apiKey    string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "LabSync-CLI/1.0",
	}, nil
}

// SetAPIKey attaches the service API key to every subsequent request.
func (h *httpClient) SetAPIKey(key string) {
	h.apiKey = key
}

// HealthCheck verifies the server is reachable and healthy.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil
}

// SyncSample pushes one sample payload from the source into the target
// system.
func (h *httpClient) SyncSample(ctx context.Context, req SyncRequest) (*SyncResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/sync/sample", req)
	if err != nil {
		return nil, err
	}

	var out SyncResponse
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchSync syncs a list of sample ids in one call.
func (h *httpClient) BatchSync(ctx context.Context, req BatchSyncRequest) (*BatchSyncResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/sync/batch", req)
	if err != nil {
		return nil, err
	}

	var out BatchSyncResponse
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncStatus fetches the sync state of one sample.
func (h *httpClient) SyncStatus(ctx context.Context, sampleID string) (*StatusResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/sync/status/"+sampleID, nil)
	if err != nil {
		return nil, err
	}

	var out StatusResponse
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate runs the server's tiered checks on one payload.
func (h *httpClient) Validate(ctx context.Context, req ValidationRequest) (*ValidationResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/validate/sample", req)
	if err != nil {
		return nil, err
	}

	var out ValidationResponse
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.apiKey != "" {
		req.Header.Set(apiKeyHeader, h.apiKey)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		// huma error payloads carry the message in "detail"; the auth
		// middleware uses "error".
		var errResp struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}
