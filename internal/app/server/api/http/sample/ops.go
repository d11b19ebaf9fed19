package sample

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getSampleOp() huma.Operation {
	return huma.Operation{
		OperationID: "samples-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/samples/{sampleId}",
		Summary:     "Get a sample",
		Description: "Returns the canonical sample record shared by both systems",
		Tags:        []string{"samples"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) auditTrailOp() huma.Operation {
	return huma.Operation{
		OperationID: "samples-audit",
		Method:      http.MethodGet,
		Path:        "/api/v1/samples/{sampleId}/audit",
		Summary:     "Get the audit trail for a sample",
		Description: "Returns the newest audit entries for the sample, most recent first",
		Tags:        []string{"samples"},
		Middlewares: h.middleware,
	}
}
