package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mpilhlt/inference-stubs/internal/inference"
	"github.com/mpilhlt/inference-stubs/internal/models"

	"github.com/danielgtaylor/huma/v2"
)

func postMarketplaceInferFunc(ctx context.Context, input *models.MarketplaceInferRequest) (*models.MarketplaceInferResponse, error) {
	registry, err := GetRegistry(ctx)
	if err != nil {
		return nil, err
	}

	model, err := registry.Get(input.Body.Model)
	if err != nil {
		if errors.Is(err, inference.ErrUnknownModel) {
			return nil, huma.Error404NotFound(fmt.Sprintf("model %s is not served here", input.Body.Model))
		}
		return nil, huma.Error500InternalServerError(fmt.Sprintf("unable to get model %s. %v", input.Body.Model, err))
	}
	slog.Debug("Running model", slog.String("model", model.Name()))

	result := model.Infer(input.Body.Text)

	response := &models.MarketplaceInferResponse{}
	response.Body.Sentiment = result.Sentiment
	response.Body.Summary = result.Summary
	return response, nil
}

func getModelsFunc(ctx context.Context, input *models.ListModelsRequest) (*models.ListModelsResponse, error) {
	registry, err := GetRegistry(ctx)
	if err != nil {
		return nil, err
	}

	response := &models.ListModelsResponse{}
	response.Body.Models = registry.Names()
	return response, nil
}

// RegisterMarketplaceRoutes registers the routes of the marketplace, which
// serves every model in registry behind a single inference route
func RegisterMarketplaceRoutes(registry *inference.Registry, api huma.API) error {
	if registry == nil {
		return fmt.Errorf("registry is nil")
	}

	postInferOp := huma.Operation{
		OperationID: "postMarketplaceInfer",
		Method:      http.MethodPost,
		Path:        "/infer",
		Summary:     "Run the selected model on text",
		Tags:        []string{"infer"},
	}
	getModelsOp := huma.Operation{
		OperationID: "getModels",
		Method:      http.MethodGet,
		Path:        "/models",
		Summary:     "List the models served by the marketplace",
		Tags:        []string{"models"},
	}

	huma.Register(api, postInferOp, addRegistryToContext(registry, postMarketplaceInferFunc))
	huma.Register(api, getModelsOp, addRegistryToContext(registry, getModelsFunc))
	return nil
}
