package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"webdesk/internal/domain"
)

type beginUploadRequest struct {
	Filename string `json:"filename"`
	FileData string `json:"fileData"` // base64
}

func (d *Deps) handleBeginUpload(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req beginUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Filename == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "filename and fileData required", nil)
		return
	}
	payload, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "fileData is not valid base64", nil)
		return
	}
	t, err := d.Transfers.BeginUpload(r.Context(), id, req.Filename, payload)
	if err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	d.Metrics.Transfers.WithLabelValues(string(t.Direction), string(t.Status)).Inc()
	d.Logger.Info().Str("session", id).Str("transfer", t.ID).Str("filename", t.Filename).Int("size", t.Size).Msg("upload registered")
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "transferId": t.ID})
}

// handleDownload answers for a known session only: the registry supports
// the download state machine, but no host-side fetch exists yet.
func (d *Deps) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, ok, err := d.Sessions.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SESSION_GET_FAILED", err.Error(), nil)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "session not found", map[string]any{"id": id})
		return
	}
	writeError(w, http.StatusNotImplemented, "DOWNLOAD_UNAVAILABLE", "file download not implemented yet", nil)
}

func (d *Deps) handleGetTransfer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, ok, err := d.Transfers.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "TRANSFER_GET_FAILED", err.Error(), nil)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "TRANSFER_NOT_FOUND", "transfer not found", map[string]any{"id": id})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "transfer": t})
}

func (d *Deps) handleMarkDelivered(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := d.Transfers.MarkDelivered(r.Context(), id); err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	if t, ok, _ := d.Transfers.Get(r.Context(), id); ok {
		d.Metrics.Transfers.WithLabelValues(string(t.Direction), string(domain.TransferDelivered)).Inc()
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type markFailedRequest struct {
	Reason string `json:"reason"`
}

func (d *Deps) handleMarkFailed(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req markFailedRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Reason == "" {
		req.Reason = "unspecified"
	}
	if err := d.Transfers.MarkFailed(r.Context(), id, req.Reason); err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	if t, ok, _ := d.Transfers.Get(r.Context(), id); ok {
		d.Metrics.Transfers.WithLabelValues(string(t.Direction), string(domain.TransferFailed)).Inc()
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (d *Deps) handleDrainNotifications(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	items, err := d.Transfers.DrainNotifications(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, map[string]any{"id": id})
		return
	}
	if items == nil {
		items = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "items": items})
}
