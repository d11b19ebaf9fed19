package validate

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"labsync/internal/domain/validation"
)

type Handler struct {
	service    validation.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service validation.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.validateSampleOp(), h.validateSample)
	huma.Register(api, h.validateBatchOp(), h.validateBatch)
	huma.Register(api, h.validateTestResultOp(), h.validateTestResult)
}

func (h *Handler) validateSample(ctx context.Context, input *validateSampleInput) (*validateSampleOutput, error) {
	result, err := h.service.Validate(ctx, validation.Request{
		Data:            input.Body.SampleData,
		Level:           input.Body.ValidationLevel,
		CheckAnomalies:  input.Body.CheckAnomalies,
		CheckCompliance: input.Body.CheckCompliance,
	})
	if err != nil {
		h.log.Error("validation failed", "error", err)
		return nil, huma.Error500InternalServerError("validation failed")
	}

	return &validateSampleOutput{Body: *result}, nil
}

func (h *Handler) validateBatch(ctx context.Context, input *validateBatchInput) (*validateBatchOutput, error) {
	result, err := h.service.ValidateBatch(ctx, input.Body)
	if err != nil {
		h.log.Error("batch validation failed", "error", err)
		return nil, huma.Error500InternalServerError("batch validation failed")
	}

	return &validateBatchOutput{Body: *result}, nil
}

func (h *Handler) validateTestResult(ctx context.Context, input *testResultInput) (*testResultOutput, error) {
	result, err := h.service.ValidateTestResult(ctx, input.Body)
	if err != nil {
		h.log.Error("test result validation failed", "error", err)
		return nil, huma.Error500InternalServerError("test result validation failed")
	}

	return &testResultOutput{Body: *result}, nil
}
