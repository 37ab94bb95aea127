package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ideahub/backend/internal/model"
	"github.com/ideahub/backend/internal/repository"
	"github.com/ideahub/backend/internal/validation"
)

type projectServiceImpl struct {
	repo      repository.ProjectRepository
	validator *validation.Validator
}

// NewProjectService creates a ProjectService.
func NewProjectService(repo repository.ProjectRepository, v *validation.Validator) ProjectService {
	return &projectServiceImpl{repo: repo, validator: v}
}

func (s *projectServiceImpl) Submit(ctx context.Context, values validation.Values) (*model.ProjectIdea, error) {
	if errs := s.validator.Validate(validation.ProjectForm, values); len(errs) > 0 {
		return nil, errs
	}
	v := validation.Normalize(validation.ProjectForm, values)
	// Validate has already checked teamSize is an integer in range.
	teamSize, _ := strconv.Atoi(v["teamSize"])
	p := &model.ProjectIdea{
		TeamName:     v["teamName"],
		TeamSize:     teamSize,
		RepName:      v["repName"],
		RepID:        v["repId"],
		RepEmail:     v["repEmail"],
		OtherMembers: v["otherMembers"],
		CourseCode:   v["courseCode"],
		Category:     v["category"],
		ProjectType:  v["projectType"],
		ProjectName:  v["projectName"],
		Description:  v["description"],
		Tools:        v["tools"],
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return p, nil
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.ProjectSummary, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if projects == nil {
		projects = []*model.ProjectSummary{}
	}
	return projects, nil
}
