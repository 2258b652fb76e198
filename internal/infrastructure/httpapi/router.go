package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"webdesk/internal/capture"
	"webdesk/internal/infrastructure/config"
	obs "webdesk/internal/infrastructure/observability"
	"webdesk/internal/usecase"
)

type Deps struct {
	Cfg       config.Config
	Logger    *zerolog.Logger
	Metrics   *obs.Metrics
	Sessions  *usecase.SessionService
	Input     *usecase.InputService
	Transfers *usecase.TransferService
	Monitor   *MonitorHub
	Loop      *capture.Loop // nil when CAPTURE_SOURCE=off
}

func NewRouter(d *Deps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.HandlerFor(d.Metrics.Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.HandleFunc("/api/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"name":    "webdesk",
			"version": obs.Version,
			"commit":  obs.Commit,
			"time":    time.Now().UTC(),
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/status", d.handleStatus).Methods(http.MethodGet)

	r.HandleFunc("/api/sessions", d.handleCreateSession).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions", d.handleListSessions).Methods(http.MethodGet)
	r.HandleFunc("/api/sessions/{id}", d.handleGetSession).Methods(http.MethodGet)
	r.HandleFunc("/api/sessions/{id}", d.handleStopSession).Methods(http.MethodDelete)
	r.HandleFunc("/api/sessions/{id}/join", d.handleJoinSession).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/{id}/frame", d.handleGetFrame).Methods(http.MethodGet)
	r.HandleFunc("/api/sessions/{id}/frame", d.handlePushFrame).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/{id}/input", d.handleInput).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/{id}/notifications", d.handleDrainNotifications).Methods(http.MethodGet)
	r.HandleFunc("/api/sessions/{id}/transfers", d.handleBeginUpload).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/{id}/download", d.handleDownload).Methods(http.MethodGet)

	r.HandleFunc("/api/transfers/{id}", d.handleGetTransfer).Methods(http.MethodGet)
	r.HandleFunc("/api/transfers/{id}/delivered", d.handleMarkDelivered).Methods(http.MethodPost)
	r.HandleFunc("/api/transfers/{id}/failed", d.handleMarkFailed).Methods(http.MethodPost)

	r.HandleFunc("/api/monitor/ws", d.Monitor.HandleWS)

	return withCORS(d.Cfg, r)
}

func withCORS(cfg config.Config, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}
