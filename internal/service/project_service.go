package service

import (
	"context"

	"github.com/ideahub/backend/internal/model"
	"github.com/ideahub/backend/internal/validation"
)

// ProjectService handles project idea submissions and the public listing.
type ProjectService interface {
	// Submit validates values against the project form and stores one new
	// idea. Errors follow the same convention as ContactService.Submit.
	Submit(ctx context.Context, values validation.Values) (*model.ProjectIdea, error)
	// List returns every idea, newest first. The slice is never nil.
	List(ctx context.Context) ([]*model.ProjectSummary, error)
}
