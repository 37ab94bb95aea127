package service

import (
	"context"

	"github.com/ideahub/backend/internal/model"
	"github.com/ideahub/backend/internal/validation"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates values against the contact form and stores one new
	// message. It returns validation.Errors when any rule fails, or an error
	// wrapping ErrStore when the write fails.
	Submit(ctx context.Context, values validation.Values) (*model.ContactMessage, error)
}
