package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/middleware"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/logger"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("debug", &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := chimiddleware.RequestID(middleware.Logger(log)(next))

	req := httptest.NewRequest(http.MethodGet, "/api/scheme/1%0D%0Aforged", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/scheme/1forged", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
