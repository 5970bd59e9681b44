package handlers

import (
	"context"
	"net/http"

	"github.com/mpilhlt/inference-stubs/internal/models"

	"github.com/danielgtaylor/huma/v2"
)

// exactRoot rejects paths other than "/". The router treats the "/"
// pattern as a catch-all for every unmatched path.
func exactRoot(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if ctx.URL().Path != "/" {
			_ = huma.WriteErr(api, ctx, http.StatusNotFound, "no such route")
			return
		}
		next(ctx)
	}
}

// RegisterStatusRoutes registers the liveness route answering with status
func RegisterStatusRoutes(api huma.API, status string) {
	getStatusOp := huma.Operation{
		OperationID: "getStatus",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Report which service is running",
		Tags:        []string{"status"},
		Middlewares: huma.Middlewares{exactRoot(api)},
	}

	huma.Register(api, getStatusOp, func(ctx context.Context, input *models.StatusRequest) (*models.StatusResponse, error) {
		response := &models.StatusResponse{}
		response.Body.Status = status
		return response, nil
	})
}
