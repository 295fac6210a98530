package syllabus

import (
	"context"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Update stores an edited document as the next version of an existing
// syllabus. Returns ErrNotFound for an unknown course and ErrNoChanges when
// the document equals the current version.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*CourseImport, error) {
	input.CourseID = strings.TrimSpace(input.CourseID)
	if input.Document.ID == "" {
		input.Document.ID = input.CourseID
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	meta := versionMeta{editor: input.Editor, summary: input.ChangeSummary}
	if meta.editor == "" {
		meta.editor = "admin"
	}

	ci, err := s.store(ctx, input.Document, meta, false)
	if err != nil {
		return nil, err
	}
	if !ci.Changed {
		return nil, domain.ErrNoChanges
	}
	return &ci, nil
}
