package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mpilhlt/inference-stubs/internal/inference"

	huma "github.com/danielgtaylor/huma/v2"
)

type contextKey string

// Context keys
const (
	ModelKey    = contextKey("model")
	RegistryKey = contextKey("registry")
)

// Services that the binary can run
const (
	ServiceSentiment   = "sentiment"
	ServiceSummarizer  = "summarizer"
	ServiceMarketplace = "marketplace"
)

// Status strings returned on GET /
const (
	SentimentStatus   = "Sentiment service running"
	SummarizerStatus  = "Summarizer service running"
	MarketplaceStatus = "AI Marketplace Backend is running"
)

// Error responses
var (
	ErrUnknownService   = errors.New("unknown service")
	ErrModelNotFound    = errors.New("model not found in context")
	ErrRegistryNotFound = errors.New("model registry not found in context")
)

// Services returns the names accepted by AddRoutes.
func Services() []string {
	return []string{ServiceSentiment, ServiceSummarizer, ServiceMarketplace}
}

// AddRoutes adds the routes of the given service to the API
func AddRoutes(service string, api huma.API) error {
	switch service {
	case ServiceSentiment:
		RegisterStatusRoutes(api, SentimentStatus)
		return RegisterSentimentRoutes(inference.NewSentimentModel(), api)
	case ServiceSummarizer:
		RegisterStatusRoutes(api, SummarizerStatus)
		return RegisterSummarizerRoutes(inference.NewSummarizerModel(), api)
	case ServiceMarketplace:
		registry, err := inference.NewRegistry(inference.NewSentimentModel(), inference.NewSummarizerModel())
		if err != nil {
			slog.Error("Unable to build model registry", slog.Any("err", err))
			return err
		}
		RegisterStatusRoutes(api, MarketplaceStatus)
		return RegisterMarketplaceRoutes(registry, api)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownService, service)
	}
}

// Middleware to add a model to the context
func addModelToContext[I any, O any](model inference.Model, next func(context.Context, *I) (*O, error)) func(context.Context, *I) (*O, error) {
	return func(ctx context.Context, input *I) (*O, error) {
		if model == nil {
			return nil, fmt.Errorf("provided model is nil")
		}
		ctx = context.WithValue(ctx, ModelKey, model)
		return next(ctx, input)
	}
}

// Middleware to add the model registry to the context
func addRegistryToContext[I any, O any](registry *inference.Registry, next func(context.Context, *I) (*O, error)) func(context.Context, *I) (*O, error) {
	return func(ctx context.Context, input *I) (*O, error) {
		if registry == nil {
			return nil, fmt.Errorf("provided registry is nil")
		}
		ctx = context.WithValue(ctx, RegistryKey, registry)
		return next(ctx, input)
	}
}

// Get the model from the context
// (exported helper function so that blackbox testing can access it)
func GetModel(ctx context.Context) (inference.Model, error) {
	model, ok := ctx.Value(ModelKey).(inference.Model)
	if !ok {
		return nil, huma.NewError(http.StatusInternalServerError, ErrModelNotFound.Error())
	}
	return model, nil
}

// Get the model registry from the context
// (exported helper function so that blackbox testing can access it)
func GetRegistry(ctx context.Context) (*inference.Registry, error) {
	registry, ok := ctx.Value(RegistryKey).(*inference.Registry)
	if !ok {
		return nil, huma.NewError(http.StatusInternalServerError, ErrRegistryNotFound.Error())
	}
	return registry, nil
}
