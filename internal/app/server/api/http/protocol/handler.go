package protocol

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"labsync/internal/domain/protocol"
)

type Handler struct {
	service    protocol.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service protocol.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.parseOp(), h.parse)
	huma.Register(api, h.classifyOp(), h.classify)
	huma.Register(api, h.extractMetadataOp(), h.extractMetadata)
}

func (h *Handler) parse(ctx context.Context, input *parseInput) (*parseOutput, error) {
	result, err := h.service.Parse(ctx, input.Body)
	if err != nil {
		h.log.Error("protocol parse failed", "error", err)
		return nil, huma.Error500InternalServerError("protocol parsing failed")
	}

	return &parseOutput{Body: *result}, nil
}

func (h *Handler) classify(ctx context.Context, input *classifyInput) (*classifyOutput, error) {
	result, err := h.service.Classify(ctx, input.Body.Text)
	if err != nil {
		h.log.Error("protocol classification failed", "error", err)
		return nil, huma.Error500InternalServerError("protocol classification failed")
	}

	return &classifyOutput{Body: *result}, nil
}

func (h *Handler) extractMetadata(ctx context.Context, input *extractMetadataInput) (*extractMetadataOutput, error) {
	meta := h.service.ExtractMetadata(ctx, input.Body.Text)

	return &extractMetadataOutput{
		Body: MetadataResponse{Success: true, Metadata: meta},
	}, nil
}
