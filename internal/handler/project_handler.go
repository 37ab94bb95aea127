package handler

import (
	"log/slog"
	"net/http"

	"github.com/ideahub/backend/internal/metrics"
	"github.com/ideahub/backend/internal/model"
	"github.com/ideahub/backend/internal/service"
	"github.com/ideahub/backend/internal/validation"
)

// ProjectHandler serves project idea submission and the public listing.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Submit handles POST /api/project.
func (h *ProjectHandler) Submit(w http.ResponseWriter, r *http.Request) {
	values, err := decodeValues(w, r)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	p, err := h.projectService.Submit(r.Context(), values)
	if err != nil {
		writeSubmitError(w, r, validation.ProjectForm.Name, err)
		return
	}

	metrics.RecordSubmission(validation.ProjectForm.Name, metrics.OutcomeAccepted)
	slog.InfoContext(r.Context(), "project idea stored", "id", p.ID)
	writeMessage(w, http.StatusCreated, msgProjectSuccess)
}

// List handles GET /api/projects. Newest first; an empty store yields data: [].
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list projects failed", "error", err)
		writeFailure(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.ProjectSummary{}
	}
	writeData(w, projects)
}
