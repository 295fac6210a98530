package syllabus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
)

const defaultEditor = "import"

// Import compiles schedule text and stores every compiled course as a new
// version when its document changed. Blocks that fail to compile are
// reported in the summary and do not abort the import.
func (s *Service) Import(ctx context.Context, input ImportInput) (*ImportResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	year := input.ReferenceYear
	if year == 0 {
		year = s.referenceYear
	}

	compiled, err := s.compiler.Compile(input.Text, year)
	if err != nil {
		if errors.Is(err, schedule.ErrNoCourseBlocksFound) {
			return nil, domain.NewValidationError("text", "no course blocks found")
		}
		return nil, fmt.Errorf("compile schedule: %w", err)
	}

	meta := versionMeta{editor: input.Editor, summary: input.ChangeSummary}
	if meta.editor == "" {
		meta.editor = defaultEditor
	}

	result := &ImportResult{
		Courses: make([]CourseImport, 0, len(compiled.Courses)),
		Summary: compiled.Summary,
	}
	for _, doc := range compiled.Courses {
		ci, err := s.store(ctx, doc, meta, true)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", doc.ID, err)
		}
		result.Courses = append(result.Courses, ci)
	}

	s.log.InfoContext(ctx, "schedule imported",
		slog.Int("courses", len(result.Courses)),
		slog.Int("blocks_failed", compiled.Summary.BlocksFailed),
		slog.String("editor", meta.editor),
	)

	return result, nil
}
