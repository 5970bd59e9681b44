package middleware

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = contextKey("requestID")
)

// MaxRequestIDLength caps the length of a client supplied request id.
const MaxRequestIDLength = 64

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Accept, Content-Type, Origin, X-Request-Id",
	"Access-Control-Max-Age":       "600",
}

// validRequestID reports whether a client supplied id is a plain token
// that is safe to echo and log.
func validRequestID(id string) bool {
	return len(id) <= MaxRequestIDLength && requestIDPattern.MatchString(id)
}

// RequestID tags every request with an id. A well-formed id sent by the
// client is kept, otherwise a new UUID is generated. The id is echoed in
// the response header and stored in the request context.
func RequestID(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		ctx.SetHeader(RequestIDHeader, id)
		next(huma.WithValue(ctx, RequestIDKey, id))
	}
}

// AccessLog logs one line per handled request.
// It must be registered after RequestID to pick up the id.
func AccessLog(api huma.API, logger *slog.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		id, _ := ctx.Context().Value(RequestIDKey).(string)
		logger.Info("request handled",
			slog.String("request_id", id),
			slog.String("operation", ctx.Operation().OperationID),
			slog.String("method", ctx.Method()),
			slog.String("path", ctx.URL().Path),
			slog.Int("status", ctx.Status()),
			slog.Duration("duration", time.Since(start)))
	}
}

// CORS allows browser clients from any origin to call the API.
func CORS(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		for key, value := range corsHeaders {
			ctx.SetHeader(key, value)
		}
		next(ctx)
	}
}

// Preflight answers CORS preflight requests. OPTIONS has no huma
// operations, so it is mounted on the router directly.
func Preflight(w http.ResponseWriter, r *http.Request) {
	for key, value := range corsHeaders {
		w.Header().Set(key, value)
	}
	w.WriteHeader(http.StatusNoContent)
}
