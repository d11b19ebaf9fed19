package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Health check endpoint",
		Description: "Checks every critical backing service and reports per-service latency",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) readinessOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-ready",
		Method:      http.MethodGet,
		Path:        "/api/v1/health/ready",
		Summary:     "Readiness probe",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) livenessOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-live",
		Method:      http.MethodGet,
		Path:        "/api/v1/health/live",
		Summary:     "Liveness probe",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
