package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/skallerud/splatvault/pkg/ply"
)

func TestAPIKeyMiddleware(t *testing.T) {
	handler := apiKeyMiddleware("secret", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/assets", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp APIResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "Missing X-API-Key")
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/assets", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/assets", nil)
		req.Header.Set("X-API-Key", "secret")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPIKeyMiddlewareRecordsAuthOutcomes(t *testing.T) {
	// promauto registers against the default registry, so the one
	// Metrics instance in this test binary lives here.
	metrics := NewMetrics()
	handler := apiKeyMiddleware("secret", metrics)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(key string) {
		req := httptest.NewRequest("GET", "/api/v1/assets", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	serve("secret")
	serve("secret")
	serve("wrong")
	serve("") // no key presented, no auth attempt recorded

	success := testutil.ToFloat64(metrics.authRequestsTotal.WithLabelValues(statusSuccess))
	failure := testutil.ToFloat64(metrics.authRequestsTotal.WithLabelValues(statusError))
	assert.Equal(t, 2.0, success)
	assert.Equal(t, 1.0, failure)
}

func TestSendLoadFailure(t *testing.T) {
	t.Run("structural error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		sendLoadFailure(rec, &ply.StructuralError{Message: "unknown scalar type 'longdouble'"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp APIResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "asset failed to load")
		assert.Contains(t, resp.Error, "longdouble")
		assert.NotContains(t, resp.Error, "stream ended early")
	})

	t.Run("truncation gets a hint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		sendLoadFailure(rec, &ply.TruncationError{Message: "stream ended mid-payload"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp APIResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "asset failed to load")
		assert.Contains(t, resp.Error, "stream ended early")
	})
}

func TestSendSuccessAndError(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		sendSuccess(rec, map[string]string{"status": "healthy"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp APIResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Error)
	})

	t.Run("error envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		sendError(rec, "boom", http.StatusBadRequest)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp APIResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "boom", resp.Error)
	})
}
