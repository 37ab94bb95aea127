package handler

import (
	"log/slog"
	"net/http"

	"github.com/ideahub/backend/internal/metrics"
	"github.com/ideahub/backend/internal/service"
	"github.com/ideahub/backend/internal/validation"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	values, err := decodeValues(w, r)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	msg, err := h.contactService.Submit(r.Context(), values)
	if err != nil {
		writeSubmitError(w, r, validation.ContactForm.Name, err)
		return
	}

	metrics.RecordSubmission(validation.ContactForm.Name, metrics.OutcomeAccepted)
	slog.InfoContext(r.Context(), "contact message stored", "id", msg.ID)
	writeMessage(w, http.StatusCreated, msgContactSuccess)
}
