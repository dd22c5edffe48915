package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/mfield/memorymatch/internal/api/handler"
	"github.com/mfield/memorymatch/internal/api/middleware"
	"github.com/mfield/memorymatch/internal/services/rank"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	RankController rank.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	leaderboardHandler := handler.NewLeaderboardHandler(cfg.RankController)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Leaderboard API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/db-status", leaderboardHandler.DBStatus).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", leaderboardHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", leaderboardHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard/stats", leaderboardHandler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/standing/{name}", leaderboardHandler.Standing).Methods(http.MethodGet)

	// Browser clients are served from another origin
	return cors.Default().Handler(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
