package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tealeaves/wordstats/internal/api/handler"
	"github.com/tealeaves/wordstats/internal/dependencies/clock"
	"github.com/tealeaves/wordstats/internal/middleware"
	"github.com/tealeaves/wordstats/internal/services/leaderboard"
	"github.com/tealeaves/wordstats/internal/services/session"
	"github.com/tealeaves/wordstats/internal/services/stats"
	"github.com/tealeaves/wordstats/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	SessionController  *session.Controller
	StatsService       *stats.Service
	LeaderboardService *leaderboard.Service
	Directory          storage.Directory
	Clock              clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.Directory)
	statsHandler := handler.NewStatsHandler(cfg.StatsService, cfg.Clock)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game session routes
	api.HandleFunc("/games/start", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/games/update", sessionHandler.Update).Methods(http.MethodPost)
	api.HandleFunc("/games/restore", sessionHandler.Restore).Methods(http.MethodGet)
	api.HandleFunc("/games/complete", sessionHandler.Complete).Methods(http.MethodPost)

	// Statistics routes
	api.HandleFunc("/records", statsHandler.CreateRecord).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}/stats", statsHandler.PlayerStats).Methods(http.MethodGet)

	// Leaderboard routes
	api.HandleFunc("/leaders/wins", leaderboardHandler.TopWins).Methods(http.MethodGet)
	api.HandleFunc("/leaders/streaks", leaderboardHandler.TopStreaks).Methods(http.MethodGet)
	api.HandleFunc("/leaders/refresh", leaderboardHandler.Refresh).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
