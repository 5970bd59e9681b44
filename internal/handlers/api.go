package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mpilhlt/inference-stubs/internal/middleware"

	"github.com/danielgtaylor/huma/v2/adapters/humago"

	huma "github.com/danielgtaylor/huma/v2"
)

// Version of the API reported in the OpenAPI document
const Version = "0.1.0"

var titles = map[string]string{
	ServiceSentiment:   "Sentiment Service",
	ServiceSummarizer:  "Summarizer Service",
	ServiceMarketplace: "AI Marketplace Backend",
}

// NewAPI creates the API of service on router, with middleware and routes
// registered.
func NewAPI(service string, router *http.ServeMux, logger *slog.Logger) (huma.API, error) {
	title, ok := titles[service]
	if !ok {
		title = service
	}
	config := huma.DefaultConfig(title, Version)
	// Drop the schema link hook so that response bodies carry no "$schema" field.
	config.CreateHooks = nil

	api := humago.New(router, config)
	router.HandleFunc("OPTIONS /", middleware.Preflight)
	api.UseMiddleware(middleware.RequestID(api))
	api.UseMiddleware(middleware.AccessLog(api, logger))
	api.UseMiddleware(middleware.CORS(api))

	err := AddRoutes(service, api)
	if err != nil {
		return nil, err
	}
	return api, nil
}
