package inference

import (
	"errors"
	"fmt"
	"sort"
)

// Model names.
const (
	SentimentModel  = "sentiment"
	SummarizerModel = "summarizer"
)

var ErrUnknownModel = errors.New("unknown model")

// Result is the output of a single inference. Exactly one field is set.
type Result struct {
	Sentiment string
	Summary   string
}

// Model turns a text into a Result. Implementations must be safe for
// concurrent use.
type Model interface {
	Name() string
	Infer(text string) Result
}

type sentimentModel struct{}

func (sentimentModel) Name() string { return SentimentModel }

func (sentimentModel) Infer(text string) Result {
	return Result{Sentiment: Classify(text)}
}

type summarizerModel struct{}

func (summarizerModel) Name() string { return SummarizerModel }

func (summarizerModel) Infer(text string) Result {
	return Result{Summary: Summarize(text)}
}

// NewSentimentModel returns the keyword-based sentiment model.
func NewSentimentModel() Model { return sentimentModel{} }

// NewSummarizerModel returns the truncating summarizer model.
func NewSummarizerModel() Model { return summarizerModel{} }

// Registry maps model names to models. It is filled once at startup and
// only read afterwards.
type Registry struct {
	models map[string]Model
}

// NewRegistry builds a registry from the given models. Names must be
// unique and non-empty.
func NewRegistry(models ...Model) (*Registry, error) {
	r := &Registry{models: make(map[string]Model, len(models))}
	for _, m := range models {
		if m == nil {
			return nil, errors.New("model is nil")
		}
		name := m.Name()
		if name == "" {
			return nil, errors.New("model name is empty")
		}
		if _, ok := r.models[name]; ok {
			return nil, fmt.Errorf("model %q registered twice", name)
		}
		r.models[name] = m
	}
	return r, nil
}

// Get returns the model registered under name.
func (r *Registry) Get(name string) (Model, error) {
	m, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return m, nil
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
