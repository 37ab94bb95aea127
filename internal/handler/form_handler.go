package handler

import (
	"net/http"

	"github.com/ideahub/backend/internal/validation"
)

// FormHandler serves form schemas to the browser so client-side checks run
// the exact rules the server enforces.
type FormHandler struct {
	options validation.OptionSets
}

// NewFormHandler creates a FormHandler describing forms with options.
func NewFormHandler(options validation.OptionSets) *FormHandler {
	return &FormHandler{options: options}
}

// Schema handles GET /api/forms/{form}.
func (h *FormHandler) Schema(w http.ResponseWriter, r *http.Request) {
	form, ok := validation.Lookup(r.PathValue("form"))
	if !ok {
		writeFailure(w, http.StatusNotFound, "unknown form")
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	writeData(w, form.Describe(h.options))
}
