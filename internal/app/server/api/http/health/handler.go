package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const version = "1.0.0"

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler builds the health handler. db is nil when the server runs on
// the in-memory store; only the api service is reported then.
func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.readinessOp(), h.readiness)
	huma.Register(api, h.livenessOp(), h.liveness)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	services := map[string]ServiceHealth{
		"api": {Status: StatusHealthy, Message: "Running"},
	}
	overall := StatusHealthy

	if h.db != nil {
		start := time.Now()
		if err := h.db.Ping(ctx); err != nil {
			services["postgresql"] = ServiceHealth{
				Status:  StatusUnhealthy,
				Message: err.Error(),
			}
			overall = StatusUnhealthy
		} else {
			latency := float64(time.Since(start).Microseconds()) / 1000.0
			services["postgresql"] = ServiceHealth{
				Status:    StatusHealthy,
				LatencyMS: &latency,
				Message:   "Connected",
			}
		}
	}

	return &Output{
		Body: Response{
			Status:    overall,
			Timestamp: time.Now().UTC(),
			Services:  services,
			Version:   version,
		},
	}, nil
}

func (h *Handler) readiness(_ context.Context, _ *struct{}) (*readyOutput, error) {
	return &readyOutput{Body: readyResponse{Ready: true}}, nil
}

func (h *Handler) liveness(_ context.Context, _ *struct{}) (*liveOutput, error) {
	return &liveOutput{Body: liveResponse{Alive: true}}, nil
}
