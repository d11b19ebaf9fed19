package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) syncSampleOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-sample",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync/sample",
		Summary:     "Sync a single sample",
		Description: "Reconciles one sample payload from the source system into the target system",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) batchSyncOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-batch",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync/batch",
		Summary:     "Sync a batch of samples",
		Description: "Reconciles a list of samples by id; per-item failures do not abort the batch",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getStatusOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/sync/status/{sampleId}",
		Summary:     "Get sync status for a sample",
		Description: "Returns the sync state and per-system timestamps for one sample",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}
