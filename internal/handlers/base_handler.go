package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kerudungstore/backend/internal/flash"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// Redirect sends the client to another view
func (h *BaseHandler) Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// RedirectWithFlash sets a one-shot status message and sends the client to
// another view. Every anticipated error ends up here rather than as a raw
// server error.
func (h *BaseHandler) RedirectWithFlash(w http.ResponseWriter, r *http.Request, url, message string) {
	flash.Set(w, message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// FormResponse is the payload for GET form routes: the external presentation
// layer renders the actual form, the handler only supplies the pending flash
// message (and, where relevant, the data the form is about).
type FormResponse struct {
	Flash string `json:"flash,omitempty"`
}
