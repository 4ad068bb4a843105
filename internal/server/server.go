package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/lakaytv/lakaytv/internal/cache"
	"github.com/lakaytv/lakaytv/internal/config"
	"github.com/lakaytv/lakaytv/internal/models"
	"github.com/lakaytv/lakaytv/internal/service"
	"github.com/lakaytv/lakaytv/internal/store"
)

// APIName and APIVersion identify the service in the root route.
const (
	APIName    = "Live TV Streaming API"
	APIVersion = "1.0.0"
)

// Server holds dependencies for the HTTP API.
type Server struct {
	store store.Store
	cfg   *config.Config
	cache *cache.Redis // nil when REDIS_URL is not set; used as the seed lock
	mux   *http.ServeMux
}

// New creates a Server and registers routes.
// rds may be nil when Redis is not configured.
func New(s store.Store, cfg *config.Config, rds *cache.Redis) *Server {
	srv := &Server{store: s, cfg: cfg, cache: rds, mux: http.NewServeMux()}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/{$}", s.handleRoot)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	// Channels
	s.mux.HandleFunc("GET /api/channels", s.handleListChannels)
	s.mux.HandleFunc("POST /api/channels", s.handleCreateChannel)
	s.mux.HandleFunc("GET /api/channels/{id}", s.handleGetChannel)
	s.mux.HandleFunc("PUT /api/channels/{id}", s.handleUpdateChannel)
	s.mux.HandleFunc("DELETE /api/channels/{id}", s.handleDeleteChannel)
	s.mux.HandleFunc("GET /api/categories", s.handleCategories)

	// Favorites
	s.mux.HandleFunc("GET /api/favorites/{user_id}", s.handleGetFavorites)
	s.mux.HandleFunc("PUT /api/favorites/{user_id}", s.handleReplaceFavorites)
	s.mux.HandleFunc("POST /api/favorites/{user_id}/toggle/{channel_id}", s.handleToggleFavorite)

	// Seeding
	s.mux.HandleFunc("POST /api/init-data", s.handleInitData)

	// Docs
	s.mux.HandleFunc("GET /api/docs", handleSwaggerUI)
	s.mux.HandleFunc("GET /api/docs/openapi.yaml", handleOpenAPISpec)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on the configured port.
// It blocks until the server is shut down or ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := ":" + s.cfg.ServerPort
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      withCORS(s.cfg.CORSOrigins, withLogging(s)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("ListenAndServe: %w", err)
	}
	return nil
}

// --- handlers ---

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": APIName,
		"version": APIVersion,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- channel handlers ---

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.ChannelFilter{
		Category:   q.Get("category"),
		Search:     q.Get("search"),
		ActiveOnly: true,
	}
	if v := q.Get("active_only"); v != "" {
		switch v {
		case "true", "1":
			filter.ActiveOnly = true
		case "false", "0":
			filter.ActiveOnly = false
		default:
			writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid active_only: %s (use true or false)", v))
			return
		}
	}

	channels, err := service.ListChannels(r.Context(), s.store, filter)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var in models.ChannelInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	ch, err := service.CreateChannel(r.Context(), s.store, in)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ch)
}

func (s *Server) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("id")

	ch, err := service.GetChannel(r.Context(), s.store, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeErr(w, http.StatusNotFound, fmt.Errorf("channel %s not found", channelID))
			return
		}
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (s *Server) handleUpdateChannel(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("id")

	var upd models.ChannelUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	ch, err := service.UpdateChannel(r.Context(), s.store, channelID, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeErr(w, http.StatusNotFound, fmt.Errorf("channel %s not found", channelID))
			return
		}
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (s *Server) handleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("id")

	if err := service.DeleteChannel(r.Context(), s.store, channelID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeErr(w, http.StatusNotFound, fmt.Errorf("channel %s not found", channelID))
			return
		}
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Channel deleted successfully"})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := service.Categories(r.Context(), s.store)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// --- favorites handlers ---

func (s *Server) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	fav, err := service.Favorites(r.Context(), s.store, userID)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

type replaceFavoritesRequest struct {
	ChannelIDs []string `json:"channel_ids"`
}

func (s *Server) handleReplaceFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	var req replaceFavoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	fav, err := service.ReplaceFavorites(r.Context(), s.store, userID, req.ChannelIDs)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	channelID := r.PathValue("channel_id")

	res, err := service.ToggleFavorite(r.Context(), s.store, userID, channelID)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}

	msg := "Channel removed from favorites"
	if res.Action == models.ToggleAdded {
		msg = "Channel added to favorites"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    msg,
		"channel_id": res.ChannelID,
		"action":     res.Action,
	})
}

// --- seeding handler ---

func (s *Server) handleInitData(w http.ResponseWriter, r *http.Request) {
	count, seeded, err := service.SeedSampleData(r.Context(), s.store, s.cache)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	if !seeded {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Data already initialized",
			"channels": count,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "Sample data initialized successfully",
		"channels_created": count,
	})
}

// writeServiceErr maps the error taxonomy to status codes: invalid input is
// 400, a miss is 404, anything else (storage unavailable) is 500.
func (s *Server) writeServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeErr(w, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrNotFound):
		writeErr(w, http.StatusNotFound, err)
	default:
		writeErr(w, http.StatusInternalServerError, err)
	}
}
