package models

import "net/http"

// Request and Response structs for the inference API
// The request structs must be structs with fields for the request path/query/header/cookie parameters and/or body.
// The response structs must be structs with fields for the output headers and body of the operation, if any.

// Status
// GET Path: "/"

type StatusRequest struct{}

type StatusResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Status string `json:"status" example:"Sentiment service running" doc:"Name of the running service"`
	}
}

// Infer on a single-model service
// POST Path: "/infer"

type InferInput struct {
	Text string `json:"text" example:"This was a GREAT experience" doc:"Text to run the model on"`
}

type InferRequest struct {
	Body InferInput
}

type SentimentResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Sentiment string `json:"sentiment" enum:"positive,negative,neutral" example:"positive" doc:"Coarse sentiment label"`
	}
}

type SummaryResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Summary string `json:"summary" example:"hi..." doc:"First 100 characters of the text, always followed by \"...\""`
	}
}

// Infer on the marketplace
// POST Path: "/infer"

type MarketplaceInferInput struct {
	Model string `json:"model" enum:"sentiment,summarizer" example:"summarizer" doc:"Name of the model to run"`
	Text  string `json:"text" example:"worst purchase ever" doc:"Text to run the model on"`
}

type MarketplaceInferRequest struct {
	Body MarketplaceInferInput
}

// MarketplaceResult holds the output of whichever model ran. Exactly one
// field is set.
type MarketplaceResult struct {
	Sentiment string `json:"sentiment,omitempty" enum:"positive,negative,neutral" doc:"Set when the sentiment model ran"`
	Summary   string `json:"summary,omitempty" doc:"Set when the summarizer model ran"`
}

type MarketplaceInferResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   MarketplaceResult
}

// List models
// GET Path: "/models"

type ListModelsRequest struct{}

type ListModelsResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Models []string `json:"models" doc:"Names of the models served by this instance"`
	}
}
