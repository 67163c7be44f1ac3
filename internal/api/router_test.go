package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/momentum/internal/api/handlers"
	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/pkg/logger"
)

type stubRunner struct{}

func (stubRunner) Run(ctx context.Context) (*contracts.Recommendations, error) {
	return &contracts.Recommendations{Period: "6mo"}, nil
}

type stubUniverse struct{}

func (stubUniverse) Tickers(ctx context.Context) ([]string, error) {
	return []string{"AAPL"}, nil
}

func testRouter() http.Handler {
	log := logger.NewWriter(&bytes.Buffer{}, "error")
	return NewRouter(
		handlers.NewAnalysisHandler(stubRunner{}, log),
		handlers.NewUniverseHandler(stubUniverse{}, log),
		log,
	)
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/recommendations", http.StatusOK},
		{http.MethodGet, "/api/universe", http.StatusOK},
		{http.MethodPost, "/api/recommendations", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	router := testRouter()
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRouter_MethodMismatchBody(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/universe", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"error":"Method not allowed"`)
}
