package protocol

import (
	"labsync/internal/domain/protocol"
)

type parseInput struct {
	Body protocol.ParseRequest
}

type parseOutput struct {
	Body protocol.ParseResult
}

// TextRequest is the body shared by the text-only operations.
type TextRequest struct {
	Text string `json:"text" minLength:"1" doc:"Protocol or lab note text"`
}

type classifyInput struct {
	Body TextRequest
}

type classifyOutput struct {
	Body protocol.Classification
}

type extractMetadataInput struct {
	Body TextRequest
}

type extractMetadataOutput struct {
	Body MetadataResponse
}

// MetadataResponse wraps the extracted note metadata.
type MetadataResponse struct {
	Success  bool                `json:"success"`
	Metadata map[string][]string `json:"metadata"`
}
