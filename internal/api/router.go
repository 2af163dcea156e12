package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cardtally-go/internal/api/handler"
	"github.com/mcoot/cardtally-go/internal/api/middleware"
	"github.com/mcoot/cardtally-go/internal/services/score"
	"github.com/mcoot/cardtally-go/internal/services/session"
	"github.com/mcoot/cardtally-go/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	ScoreController   *score.Controller
	Storage           storage.Storage
	// ShareBaseURL prefixes generated share links; empty means links
	// are built from the request host
	ShareBaseURL string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	scoreHandler := handler.NewScoreHandler(cfg.SessionController, cfg.ScoreController)
	shareHandler := handler.NewShareHandler(cfg.SessionController, cfg.ShareBaseURL)
	preferenceHandler := handler.NewPreferenceHandler(cfg.Storage)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Session lifecycle
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/end", sessionHandler.End).Methods(http.MethodPost)

	// Players
	api.HandleFunc("/sessions/{id}/players", sessionHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/players/{pid}", sessionHandler.RemovePlayer).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/players/{pid}/avatar", sessionHandler.ChangeAvatar).Methods(http.MethodPatch)

	// Score entry
	api.HandleFunc("/sessions/{id}/rounds", scoreHandler.ApplyRound).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/players/{pid}/undo", scoreHandler.UndoLast).Methods(http.MethodPost)

	// Derived views
	api.HandleFunc("/sessions/{id}/summary", scoreHandler.Summary).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/series", scoreHandler.Series).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/export", scoreHandler.Export).Methods(http.MethodGet)

	// Sharing
	api.HandleFunc("/sessions/{id}/share", shareHandler.Share).Methods(http.MethodGet)
	api.HandleFunc("/import", shareHandler.Import).Methods(http.MethodPost)

	// Selection state
	api.HandleFunc("/state", sessionHandler.State).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/open", sessionHandler.Open).Methods(http.MethodPost)
	api.HandleFunc("/home", sessionHandler.GoHome).Methods(http.MethodPost)

	// Preferences
	api.HandleFunc("/preferences/{key}", preferenceHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/preferences/{key}", preferenceHandler.Set).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
