package validate

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) validateSampleOp() huma.Operation {
	return huma.Operation{
		OperationID: "validate-sample",
		Method:      http.MethodPost,
		Path:        "/api/v1/validate/sample",
		Summary:     "Validate a sample payload",
		Description: "Runs the tiered validation checks plus optional anomaly and compliance scoring",
		Tags:        []string{"validation"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) validateBatchOp() huma.Operation {
	return huma.Operation{
		OperationID: "validate-batch",
		Method:      http.MethodPost,
		Path:        "/api/v1/validate/batch",
		Summary:     "Validate a batch of sample payloads",
		Description: "Validates each payload independently at standard level with all checks enabled",
		Tags:        []string{"validation"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) validateTestResultOp() huma.Operation {
	return huma.Operation{
		OperationID: "validate-test-result",
		Method:      http.MethodPost,
		Path:        "/api/v1/validate/test-result",
		Summary:     "Validate a test result payload",
		Description: "Checks result fields for structural problems before they enter either system",
		Tags:        []string{"validation"},
		Middlewares: h.middleware,
	}
}
