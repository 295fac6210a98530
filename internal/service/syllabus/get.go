package syllabus

import (
	"context"
	"fmt"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// List returns a page of syllabi.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, total, err := s.repo.List(ctx, domain.SyllabusFilter{
		Search: input.Search,
		Year:   input.Year,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list syllabi: %w", err)
	}

	return &ListResult{Syllabi: items, Total: total}, nil
}

// Get returns a syllabus with the given version, or the current version when
// version is 0.
func (s *Service) Get(ctx context.Context, courseID string, version int) (*Detail, error) {
	if version < 0 {
		return nil, domain.NewValidationError("version", "must not be negative")
	}

	head, err := s.repo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if version == 0 {
		version = head.CurrentVersion
	}

	v, err := s.repo.GetVersion(ctx, head.ID, version)
	if err != nil {
		return nil, err
	}

	return &Detail{Syllabus: *head, Version: *v}, nil
}

// ListVersions returns version metadata of a syllabus, newest first.
func (s *Service) ListVersions(ctx context.Context, courseID string) ([]domain.SyllabusVersion, error) {
	head, err := s.repo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	versions, err := s.repo.ListVersions(ctx, head.ID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return versions, nil
}
