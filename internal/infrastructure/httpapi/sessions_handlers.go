package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type createSessionRequest struct {
	HostLabel string `json:"hostLabel"`
}

func (d *Deps) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if req.HostLabel == "" {
		req.HostLabel = "Unknown Host"
	}
	sess, err := d.Sessions.Create(r.Context(), req.HostLabel, r.RemoteAddr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SESSION_CREATE_FAILED", err.Error(), nil)
		return
	}
	// Seed the buffer with a first frame right away so the first viewer
	// poll is not empty.
	if d.Loop != nil {
		if err := d.Loop.CaptureNow(r.Context(), sess.ID); err != nil {
			d.Logger.Warn().Err(err).Str("session", sess.ID).Msg("initial capture failed")
		}
	}

	d.Logger.Info().Str("session", sess.ID).Str("host", sess.HostLabel).Msg("session created")
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"sessionId": sess.ID,
		"accessUrl": "/join/" + sess.ID,
		"canvas":    map[string]int{"width": sess.CanvasWidth, "height": sess.CanvasHeight},
	})
}

func (d *Deps) handleListSessions(w http.ResponseWriter, r *http.Request) {
	items, err := d.Sessions.ListActive(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SESSIONS_LIST_FAILED", err.Error(), nil)
		return
	}
	// the gauge is derived here only; stop/reap have no counter of their own
	d.Metrics.ActiveSessions.Set(float64(len(items)))
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "items": items, "total": len(items)})
}

func (d *Deps) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, ok, err := d.Sessions.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SESSION_GET_FAILED", err.Error(), map[string]any{"id": id})
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "session not found", map[string]any{"id": id})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "session": sess})
}

func (d *Deps) handleStopSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := d.Sessions.Stop(r.Context(), id); err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	d.Logger.Info().Str("session", id).Msg("session stopped")
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type joinSessionRequest struct {
	ClientID string `json:"clientId"`
}

func (d *Deps) handleJoinSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req joinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientID == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "clientId required", nil)
		return
	}
	if err := d.Sessions.Join(r.Context(), id, req.ClientID); err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	sess, _, _ := d.Sessions.Get(r.Context(), id)
	d.Logger.Info().Str("session", id).Str("client", req.ClientID).Msg("viewer joined")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"hostLabel": sess.HostLabel,
		"canvas":    map[string]int{"width": sess.CanvasWidth, "height": sess.CanvasHeight},
	})
}

func (d *Deps) handleStatus(w http.ResponseWriter, r *http.Request) {
	items, err := d.Sessions.ListActive(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STATUS_FAILED", err.Error(), nil)
		return
	}
	d.Metrics.ActiveSessions.Set(float64(len(items)))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"connected":     len(items) > 0,
		"sessions":      len(items),
		"captureSource": d.Cfg.CaptureSource,
		"canvas":        map[string]int{"width": d.Cfg.CanvasWidth, "height": d.Cfg.CanvasHeight},
	})
}
