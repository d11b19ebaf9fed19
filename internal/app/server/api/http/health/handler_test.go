package health

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		db             Pinger
		expectedStatus string
		expectDBEntry  bool
	}{
		{
			name:           "no database configured",
			db:             nil,
			expectedStatus: StatusHealthy,
			expectDBEntry:  false,
		},
		{
			name:           "database reachable",
			db:             &fakePinger{},
			expectedStatus: StatusHealthy,
			expectDBEntry:  true,
		},
		{
			name:           "database down",
			db:             &fakePinger{err: errors.New("connection refused")},
			expectedStatus: StatusUnhealthy,
			expectDBEntry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(tt.db, slog.Default(), huma.Middlewares{})

			output, err := handler.healthCheck(context.Background(), &Input{})

			require.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
			assert.Equal(t, version, output.Body.Version)
			assert.False(t, output.Body.Timestamp.IsZero())

			api, ok := output.Body.Services["api"]
			require.True(t, ok)
			assert.Equal(t, StatusHealthy, api.Status)

			pg, ok := output.Body.Services["postgresql"]
			assert.Equal(t, tt.expectDBEntry, ok)
			if tt.expectDBEntry && tt.expectedStatus == StatusHealthy {
				assert.NotNil(t, pg.LatencyMS)
				assert.Equal(t, "Connected", pg.Message)
			}
		})
	}
}

func TestHandler_probes(t *testing.T) {
	handler := NewHandler(nil, slog.Default(), huma.Middlewares{})

	ready, err := handler.readiness(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, ready.Body.Ready)

	live, err := handler.liveness(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, live.Body.Alive)
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(nil, slog.Default(), huma.Middlewares{})

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
