package sample

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"labsync/internal/domain/sample"
)

// Handler is the read-only query surface over samples and their audit trail.
// It talks to the repository directly; there is no write path here.
type Handler struct {
	repo       sample.Repository
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(repo sample.Repository, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		repo:       repo,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getSampleOp(), h.getSample)
	huma.Register(api, h.auditTrailOp(), h.auditTrail)
}

func (h *Handler) getSample(ctx context.Context, input *getSampleInput) (*getSampleOutput, error) {
	sm, err := h.repo.FindBySampleID(ctx, input.SampleID)
	if err != nil {
		if errors.Is(err, sample.ErrNotFound) {
			return nil, huma.Error404NotFound("Sample not found")
		}
		h.log.Error("sample lookup failed", "sample_id", input.SampleID, "error", err)
		return nil, huma.Error500InternalServerError("failed to load sample")
	}

	return &getSampleOutput{Body: *sm}, nil
}

func (h *Handler) auditTrail(ctx context.Context, input *auditTrailInput) (*auditTrailOutput, error) {
	entries, err := h.repo.AuditTrail(ctx, input.SampleID, input.Limit)
	if err != nil {
		if errors.Is(err, sample.ErrNotFound) {
			return nil, huma.Error404NotFound("Sample not found")
		}
		h.log.Error("audit trail lookup failed", "sample_id", input.SampleID, "error", err)
		return nil, huma.Error500InternalServerError("failed to load audit trail")
	}
	if entries == nil {
		entries = []sample.AuditEntry{}
	}

	return &auditTrailOutput{
		Body: AuditTrailResponse{
			SampleID: input.SampleID,
			Total:    len(entries),
			Entries:  entries,
		},
	}, nil
}
