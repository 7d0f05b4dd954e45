package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wodomi/HomiMeet-FullApp/internal/auth"
	"github.com/wodomi/HomiMeet-FullApp/internal/metrics"
	"github.com/wodomi/HomiMeet-FullApp/internal/middleware"
	"github.com/wodomi/HomiMeet-FullApp/internal/service"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
	"github.com/wodomi/HomiMeet-FullApp/pkg/api/v1/apiv1connect"
)

// rpcPrefix identifies Connect procedure paths, which never fall through to static files.
const rpcPrefix = "/homimeet.v1."

type serverDeps struct {
	store        storage.Store
	jwtManager   *auth.JWTManager
	authn        auth.Authenticator
	logger       *slog.Logger
	staticDir    string
	googleAPIKey string
}

// newRouter mounts every Connect service and the plain HTTP endpoints.
func newRouter(d serverDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.LogRequests(d.logger))
	r.Use(middleware.CORS)
	r.Use(metrics.InstrumentHandler)

	public := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.LoggingInterceptor(d.logger),
		middleware.OptionalAuth(d.jwtManager),
	)
	protected := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.LoggingInterceptor(d.logger),
		middleware.RequireAuth(d.jwtManager),
	)

	mount := func(path string, h http.Handler) {
		r.Mount(path, h)
	}

	mount(apiv1connect.NewAuthServiceHandler(
		service.NewAuthService(d.authn, d.jwtManager, d.store, d.logger), public))
	mount(apiv1connect.NewMeetupServiceHandler(
		service.NewMeetupService(d.store, d.logger), protected))
	mount(apiv1connect.NewInvitationServiceHandler(
		service.NewInvitationService(d.store, d.logger), protected))
	mount(apiv1connect.NewPunctualityServiceHandler(
		service.NewPunctualityService(d.store, d.logger), protected))
	mount(apiv1connect.NewProfileServiceHandler(
		service.NewProfileService(d.store, d.logger), protected))
	mount(apiv1connect.NewGroupServiceHandler(
		service.NewGroupService(d.store, d.logger), protected))

	r.Get("/healthz", healthHandler(d.store, d.logger))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/api/client-config", clientConfigHandler(d.googleAPIKey))
	r.NotFound(staticHandler(d.staticDir))

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// healthHandler reports database reachability and the database clock.
func healthHandler(store storage.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now, err := store.Ping(r.Context())
		if err != nil {
			logger.Error("Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "error",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"db_time": now.UTC().Format(time.RFC3339),
		})
	}
}

// clientConfigHandler hands the browser the keys it needs for the map widget.
func clientConfigHandler(googleAPIKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"google_api_key": googleAPIKey})
	}
}

// staticHandler serves the frontend and falls back to index.html for unknown paths.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, rpcPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean("/"+urlPath))
		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}
