package handlers

import (
	"net/http"

	"github.com/wonny/momentum/internal/universe"
	"github.com/wonny/momentum/pkg/logger"
)

// UniverseHandler handles universe API endpoints
type UniverseHandler struct {
	provider universe.Provider
	logger   *logger.Logger
}

// NewUniverseHandler creates a new universe handler
func NewUniverseHandler(provider universe.Provider, log *logger.Logger) *UniverseHandler {
	return &UniverseHandler{
		provider: provider,
		logger:   log,
	}
}

// UniverseResponse lists the tickers the analyzer would process.
type UniverseResponse struct {
	Count   int      `json:"count"`
	Tickers []string `json:"tickers"`
}

// GetUniverse returns the current analysis universe
// GET /api/universe
func (h *UniverseHandler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tickers, err := h.provider.Tickers(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to resolve universe")
		respondError(w, http.StatusInternalServerError, "Failed to resolve universe")
		return
	}

	respondJSON(w, http.StatusOK, UniverseResponse{
		Count:   len(tickers),
		Tickers: tickers,
	})
}
