package handlers

import (
	"context"
	"net/http"

	"github.com/mpilhlt/inference-stubs/internal/inference"
	"github.com/mpilhlt/inference-stubs/internal/models"

	"github.com/danielgtaylor/huma/v2"
)

func postSentimentFunc(ctx context.Context, input *models.InferRequest) (*models.SentimentResponse, error) {
	model, err := GetModel(ctx)
	if err != nil {
		return nil, err
	}

	response := &models.SentimentResponse{}
	response.Body.Sentiment = model.Infer(input.Body.Text).Sentiment
	return response, nil
}

func postSummaryFunc(ctx context.Context, input *models.InferRequest) (*models.SummaryResponse, error) {
	model, err := GetModel(ctx)
	if err != nil {
		return nil, err
	}

	response := &models.SummaryResponse{}
	response.Body.Summary = model.Infer(input.Body.Text).Summary
	return response, nil
}

// RegisterSentimentRoutes registers the inference route of the sentiment service
func RegisterSentimentRoutes(model inference.Model, api huma.API) error {
	postSentimentOp := huma.Operation{
		OperationID: "postSentiment",
		Method:      http.MethodPost,
		Path:        "/infer",
		Summary:     "Classify text as positive, negative or neutral",
		Tags:        []string{"infer"},
	}

	huma.Register(api, postSentimentOp, addModelToContext(model, postSentimentFunc))
	return nil
}

// RegisterSummarizerRoutes registers the inference route of the summarizer service
func RegisterSummarizerRoutes(model inference.Model, api huma.API) error {
	postSummaryOp := huma.Operation{
		OperationID: "postSummary",
		Method:      http.MethodPost,
		Path:        "/infer",
		Summary:     "Summarize text by keeping its first 100 characters",
		Description: "The \"...\" suffix is appended even when the text is shorter than 100 characters.",
		Tags:        []string{"infer"},
	}

	huma.Register(api, postSummaryOp, addModelToContext(model, postSummaryFunc))
	return nil
}
