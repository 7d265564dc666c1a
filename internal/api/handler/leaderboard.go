package handler

import (
	"net/http"

	"github.com/tealeaves/wordstats/internal/api/response"
	"github.com/tealeaves/wordstats/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	service *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(service *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// TopWins handles GET /api/v1/leaders/wins
func (h *LeaderboardHandler) TopWins(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.TopWins(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Leaderboard{Entries: entries})
}

// TopStreaks handles GET /api/v1/leaders/streaks
func (h *LeaderboardHandler) TopStreaks(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.TopStreaks(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Leaderboard{Entries: entries})
}

// Refresh handles POST /api/v1/leaders/refresh
func (h *LeaderboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
