package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/pkg/logger"
)

// Runner executes one full analysis pass.
type Runner interface {
	Run(ctx context.Context) (*contracts.Recommendations, error)
}

// AnalysisHandler handles recommendation API endpoints
type AnalysisHandler struct {
	runner Runner
	logger *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(runner Runner, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		runner: runner,
		logger: log,
	}
}

// GetRecommendations runs an analysis and returns the ranked lists.
// The optional top_n query parameter trims both lists; it can only
// narrow the configured list size, never widen it.
// GET /api/recommendations?top_n=3
func (h *AnalysisHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topN := 0
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "Invalid 'top_n' parameter (expected positive integer)")
			return
		}
		topN = n
	}

	recs, err := h.runner.Run(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Analysis run failed")
		respondError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	if topN > 0 {
		recs.Buys = trimBuys(recs.Buys, topN)
		recs.Sells = trimSells(recs.Sells, topN)
	}

	respondJSON(w, http.StatusOK, recs)
}

// trimBuys keeps the strongest buys, which sit at the head of the list.
func trimBuys(buys []contracts.ScoredStock, n int) []contracts.ScoredStock {
	if n >= len(buys) {
		return buys
	}
	return buys[:n]
}

// trimSells keeps the weakest scores. The sell list is the tail of the
// descending sort read in array order, so those sit at the end.
func trimSells(sells []contracts.ScoredStock, n int) []contracts.ScoredStock {
	if n >= len(sells) {
		return sells
	}
	return sells[len(sells)-n:]
}
