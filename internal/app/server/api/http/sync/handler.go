package sync

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"labsync/internal/domain/sample"
	"labsync/internal/domain/sync"
)

type Handler struct {
	service    sync.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service sync.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.syncSampleOp(), h.syncSample)
	huma.Register(api, h.batchSyncOp(), h.batchSync)
	huma.Register(api, h.getStatusOp(), h.getStatus)
}

func (h *Handler) syncSample(ctx context.Context, input *syncSampleInput) (*syncSampleOutput, error) {
	if input.Body.SourceSystem == input.Body.TargetSystem {
		return nil, huma.Error422UnprocessableEntity("Source and target systems must be different")
	}

	result, err := h.service.SyncSample(ctx, sync.Request{
		SampleID: input.Body.SampleID,
		Source:   input.Body.SourceSystem,
		Target:   input.Body.TargetSystem,
		Data:     input.Body.Data,
		Force:    input.Body.ForceSync,
	})
	if err != nil {
		h.log.Error("sync failed", "sample_id", input.Body.SampleID, "error", err)
		return nil, huma.Error500InternalServerError("sync failed")
	}

	// Consistency check runs after the response, like the audit follow-up
	// jobs in the source systems.
	if result.Outcome == sync.OutcomeApplied {
		go h.service.ValidateSync(context.WithoutCancel(ctx), result.SampleID)
	}

	return &syncSampleOutput{Body: toSyncResponse(*result)}, nil
}

func (h *Handler) batchSync(ctx context.Context, input *batchSyncInput) (*batchSyncOutput, error) {
	if input.Body.SourceSystem == input.Body.TargetSystem {
		return nil, huma.Error422UnprocessableEntity("Source and target systems must be different")
	}

	result, err := h.service.BatchSync(ctx, sync.BatchRequest{
		SampleIDs: input.Body.SampleIDs,
		Source:    input.Body.SourceSystem,
		Target:    input.Body.TargetSystem,
		Force:     input.Body.ForceSync,
	})
	if err != nil {
		h.log.Error("batch sync failed", "error", err)
		return nil, huma.Error500InternalServerError("batch sync failed")
	}

	out := BatchSyncResponse{
		Total:      result.Total,
		Successful: result.Successful,
		Failed:     result.Failed,
		Results:    make([]SyncResponse, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		out.Results = append(out.Results, toSyncResponse(r))
	}

	return &batchSyncOutput{Body: out}, nil
}

func (h *Handler) getStatus(ctx context.Context, input *statusInput) (*statusOutput, error) {
	info, err := h.service.Status(ctx, input.SampleID)
	if err != nil {
		if errors.Is(err, sample.ErrNotFound) {
			return nil, huma.Error404NotFound("Sample not found")
		}
		h.log.Error("status lookup failed", "sample_id", input.SampleID, "error", err)
		return nil, huma.Error500InternalServerError("failed to get sync status")
	}

	return &statusOutput{
		Body: StatusResponse{
			SampleID:   info.SampleID,
			Status:     info.Status.String(),
			LIMSSynced: info.LIMSSynced,
			ELNSynced:  info.ELNSynced,
			CreatedAt:  info.CreatedAt,
			UpdatedAt:  info.UpdatedAt,
		},
	}, nil
}
