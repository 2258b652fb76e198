package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"webdesk/internal/domain"
)

type frameView struct {
	CapturedAt time.Time `json:"capturedAt"`
	Payload    []byte    `json:"payload"` // base64 in JSON
	Width      int       `json:"width"`
	Height     int       `json:"height"`
}

func (d *Deps) handleGetFrame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f, err := d.Sessions.LatestFrame(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	d.Metrics.FramesServed.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"frame": frameView{
			CapturedAt: f.CapturedAt,
			Payload:    f.Payload,
			Width:      f.Width,
			Height:     f.Height,
		},
	})
}

type pushFrameRequest struct {
	CapturedAt time.Time `json:"capturedAt"`
	Payload    []byte    `json:"payload"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
}

// handlePushFrame is the host-agent ingestion path: already-encoded frames
// go through the same buffer contract as the local capture loop.
func (d *Deps) handlePushFrame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req pushFrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if len(req.Payload) == 0 {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "payload required", nil)
		return
	}
	if req.CapturedAt.IsZero() {
		req.CapturedAt = time.Now().UTC()
	}
	// frame dims are the session canvas, fixed at creation; viewers scale
	// their input against whatever is served here
	sess, ok, err := d.Sessions.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SESSION_GET_FAILED", err.Error(), map[string]any{"id": id})
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "session not found", map[string]any{"id": id})
		return
	}
	if req.Width <= 0 {
		req.Width = sess.CanvasWidth
	}
	if req.Height <= 0 {
		req.Height = sess.CanvasHeight
	}
	if req.Width != sess.CanvasWidth || req.Height != sess.CanvasHeight {
		writeError(w, http.StatusBadRequest, "CANVAS_MISMATCH", "frame dimensions must match the session canvas", map[string]any{
			"canvas": map[string]int{"width": sess.CanvasWidth, "height": sess.CanvasHeight},
		})
		return
	}
	f := domain.Frame{
		CapturedAt: req.CapturedAt,
		Payload:    req.Payload,
		Width:      req.Width,
		Height:     req.Height,
	}
	if err := d.Sessions.PublishFrame(r.Context(), id, f, domain.OriginPush); err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	d.Metrics.FramesPublished.WithLabelValues(string(domain.OriginPush)).Inc()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
