//sync of sample records between LIMS and ELN;
//tiered validation with anomaly and compliance scoring;
//keyword parsing of free-text protocols;
//compliance queries over samples and their audit trail.

//POST /api/v1/sync/sample             # Sync one sample (auth)
//POST /api/v1/sync/batch              # Sync a batch of sample ids (auth)
//GET  /api/v1/sync/status/{sampleId}  # Sync state of a sample (auth)
//POST /api/v1/validate/sample         # Validate one payload (auth)
//POST /api/v1/validate/batch          # Validate many payloads (auth)
//POST /api/v1/validate/test-result    # Validate a test result (auth)
//POST /api/v1/protocol/parse          # Parse protocol text (auth)
//POST /api/v1/protocol/classify       # Classify a protocol (auth)
//POST /api/v1/protocol/extract-metadata # Extract note metadata (auth)
//GET  /api/v1/samples/{sampleId}       # Get a sample (auth)
//GET  /api/v1/samples/{sampleId}/audit # Audit trail of a sample (auth)
//GET  /api/v1/health                   # Health with per-service latency (public)
//GET  /api/v1/health/ready             # Readiness probe (public)
//GET  /api/v1/health/live              # Liveness probe (public)

package api

import (
	healthAPI "labsync/internal/app/server/api/http/health"
	"labsync/internal/app/server/api/http/middleware"
	"labsync/internal/app/server/api/http/middleware/auth"
	"labsync/internal/app/server/api/http/middleware/logger"
	protocolAPI "labsync/internal/app/server/api/http/protocol"
	sampleAPI "labsync/internal/app/server/api/http/sample"
	syncAPI "labsync/internal/app/server/api/http/sync"
	validateAPI "labsync/internal/app/server/api/http/validate"
	"labsync/internal/app/server/config"
	"labsync/internal/domain/protocol"
	"labsync/internal/domain/sample"
	"labsync/internal/domain/sync"
	"labsync/internal/domain/validation"
	"labsync/internal/ml/anomaly"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Sync     *syncAPI.Handler
	Validate *validateAPI.Handler
	Protocol *protocolAPI.Handler
	Sample   *sampleAPI.Handler
}

// New builds a *chi.Mux with every operation registered through
// huma.Register. The repository decides whether the server runs on
// postgres or on the in-memory store; db is nil in the latter case.
func New(repo sample.Repository, db healthAPI.Pinger, detector *anomaly.Detector, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("LabSync API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"apiKey": {Type: "apiKey", In: "header", Name: auth.HeaderName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(repo, db, detector, cfg, log)
	h.Health.SetupRoutes(API)
	h.Sync.SetupRoutes(API)
	h.Validate.SetupRoutes(API)
	h.Protocol.SetupRoutes(API)
	h.Sample.SetupRoutes(API)

	return mux
}

func handlers(repo sample.Repository, db healthAPI.Pinger, detector *anomaly.Detector, cfg *config.Config, log *slog.Logger) *Handlers {
	authMW := auth.New(cfg.Auth.APIKeyHash, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(db, log, middlewares.GetAllAndClear())

	syncService := sync.NewService(repo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	syncHandler := syncAPI.NewHandler(syncService, log, middlewares.GetAllAndClear())

	validationService := validation.NewService(detector, log, &validation.Config{
		AnomalyThreshold:    cfg.Validation.AnomalyThreshold,
		ComplianceThreshold: cfg.Validation.ComplianceThreshold,
	})
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	validateHandler := validateAPI.NewHandler(validationService, log, middlewares.GetAllAndClear())

	protocolService := protocol.NewService(log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	protocolHandler := protocolAPI.NewHandler(protocolService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	sampleHandler := sampleAPI.NewHandler(repo, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Sync:     syncHandler,
		Validate: validateHandler,
		Protocol: protocolHandler,
		Sample:   sampleHandler,
	}
}
