package syllabus

import (
	"context"
	"fmt"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Diff compares two versions of a syllabus. A zero to selects the current
// version; a zero from selects the version before to.
func (s *Service) Diff(ctx context.Context, courseID string, from, to int) (*domain.VersionDiff, error) {
	if from < 0 || to < 0 {
		return nil, domain.NewValidationError("version", "must not be negative")
	}

	head, err := s.repo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if to == 0 {
		to = head.CurrentVersion
	}
	if from == 0 {
		from = max(to-1, 1)
	}

	a, err := s.repo.GetVersion(ctx, head.ID, from)
	if err != nil {
		return nil, err
	}
	b, err := s.repo.GetVersion(ctx, head.ID, to)
	if err != nil {
		return nil, err
	}

	changes, err := DetectChanges(a.Document, b.Document)
	if err != nil {
		return nil, err
	}
	unified, err := UnifiedDiff(a.Document, b.Document,
		fmt.Sprintf("%s@v%d", courseID, from), fmt.Sprintf("%s@v%d", courseID, to))
	if err != nil {
		return nil, err
	}

	return &domain.VersionDiff{
		CourseID: courseID,
		From:     from,
		To:       to,
		Changes:  changes,
		Unified:  unified,
	}, nil
}
