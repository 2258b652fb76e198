package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"webdesk/internal/domain"
)

func (d *Deps) handleInput(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var ev domain.InputEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if err := d.Input.Dispatch(r.Context(), id, ev); err != nil {
		d.Metrics.InputErrors.Inc()
		d.Logger.Debug().Err(err).Str("session", id).Str("kind", string(ev.Kind)).Msg("input rejected")
		writeDomainError(w, err, map[string]any{"id": id, "kind": ev.Kind})
		return
	}
	d.Metrics.InputEvents.WithLabelValues(string(ev.Kind)).Inc()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
