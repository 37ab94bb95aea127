package service

import (
	"context"
	"fmt"

	"github.com/ideahub/backend/internal/model"
	"github.com/ideahub/backend/internal/repository"
	"github.com/ideahub/backend/internal/validation"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo      repository.ContactRepository
	validator *validation.Validator
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, v *validation.Validator) ContactService {
	return &contactServiceImpl{repo: repo, validator: v}
}

func (s *contactServiceImpl) Submit(ctx context.Context, values validation.Values) (*model.ContactMessage, error) {
	if errs := s.validator.Validate(validation.ContactForm, values); len(errs) > 0 {
		return nil, errs
	}
	v := validation.Normalize(validation.ContactForm, values)
	msg := &model.ContactMessage{
		FirstName: v["firstName"],
		LastName:  v["lastName"],
		Gender:    v["gender"],
		Mobile:    v["mobile"],
		DOB:       v["dob"],
		Email:     v["email"],
		Language:  v["language"],
		Message:   v["message"],
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return msg, nil
}
