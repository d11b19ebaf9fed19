package protocol

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) parseOp() huma.Operation {
	return huma.Operation{
		OperationID: "protocol-parse",
		Method:      http.MethodPost,
		Path:        "/api/v1/protocol/parse",
		Summary:     "Parse protocol text",
		Description: "Extracts reagents, equipment and conditions from free-text protocols and assembles structured data",
		Tags:        []string{"protocol"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) classifyOp() huma.Operation {
	return huma.Operation{
		OperationID: "protocol-classify",
		Method:      http.MethodPost,
		Path:        "/api/v1/protocol/classify",
		Summary:     "Classify a protocol",
		Description: "Labels the protocol as extraction, analysis or synthesis by keyword scoring",
		Tags:        []string{"protocol"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) extractMetadataOp() huma.Operation {
	return huma.Operation{
		OperationID: "protocol-extract-metadata",
		Method:      http.MethodPost,
		Path:        "/api/v1/protocol/extract-metadata",
		Summary:     "Extract metadata from lab notes",
		Description: "Pulls dates and quantities out of free-text laboratory notes",
		Tags:        []string{"protocol"},
		Middlewares: h.middleware,
	}
}
