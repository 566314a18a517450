package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skallerud/splatvault/pkg/ply"
)

// apiKeyMiddleware validates the X-API-Key header. Every keyed attempt
// is recorded against the auth counter; requests with no key at all are
// rejected without touching it.
func apiKeyMiddleware(expectedKey string, metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				sendError(w, "Missing X-API-Key header", http.StatusUnauthorized)
				return
			}
			if apiKey != expectedKey {
				if metrics != nil {
					metrics.RecordAuthRequest(false)
				}
				sendError(w, "Invalid API key", http.StatusUnauthorized)
				return
			}
			if metrics != nil {
				metrics.RecordAuthRequest(true)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// sendLoadFailure reports a failed asset load. Structural parse errors,
// truncated streams and cloud assembly failures share one envelope;
// callers retry the whole upload or not at all. Truncation gets a hint
// since an aborted upload is the common cause.
func sendLoadFailure(w http.ResponseWriter, err error) {
	message := "asset failed to load: " + err.Error()
	var truncation *ply.TruncationError
	if errors.As(err, &truncation) {
		message += " (stream ended early; was the upload aborted?)"
	}
	sendError(w, message, http.StatusBadRequest)
}

// sendSuccess sends a successful JSON response
func sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := APIResponse{
		Success: true,
		Data:    data,
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// sendError sends an error JSON response
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}
	_ = json.NewEncoder(w).Encode(response)
}
