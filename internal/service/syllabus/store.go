package syllabus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

type versionMeta struct {
	editor  string
	summary string
}

// store writes doc as the next version of its syllabus. When create is set a
// missing syllabus is created at version 1; otherwise it is ErrNotFound.
// An unchanged document leaves the syllabus untouched.
func (s *Service) store(ctx context.Context, doc domain.CourseDocument, meta versionMeta, create bool) (CourseImport, error) {
	out := CourseImport{CourseID: doc.ID}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.repo.GetByCourseIDForUpdate(txCtx, doc.ID)
		if errors.Is(err, domain.ErrNotFound) && create {
			return s.createFirst(txCtx, doc, meta, &out)
		}
		if err != nil {
			return fmt.Errorf("get syllabus: %w", err)
		}

		prev, err := s.repo.GetVersion(txCtx, cur.ID, cur.CurrentVersion)
		if err != nil {
			return fmt.Errorf("get current version: %w", err)
		}

		changes, err := DetectChanges(prev.Document, doc)
		if err != nil {
			return err
		}
		out.Version = cur.CurrentVersion
		if len(changes) == 0 {
			return nil
		}

		summary := meta.summary
		if summary == "" {
			summary = summarizeChanges(changes)
		}
		next := cur.CurrentVersion + 1

		if _, err := s.repo.CreateVersion(txCtx, &domain.SyllabusVersion{
			SyllabusID:    cur.ID,
			Version:       next,
			Document:      doc,
			Changes:       changes,
			ChangeSummary: summary,
			Editor:        meta.editor,
		}); err != nil {
			return fmt.Errorf("create version: %w", err)
		}

		err = s.repo.AdvanceHead(txCtx, cur.ID, cur.CurrentVersion, domain.Syllabus{
			CurrentVersion: next,
			Name:           doc.Name,
			Year:           doc.Year,
		})
		if err != nil {
			return fmt.Errorf("advance head: %w", err)
		}

		out.Version = next
		out.Changed = true
		out.Changes = changes
		return nil
	})
	if err != nil {
		return CourseImport{}, err
	}

	if out.Changed {
		s.log.InfoContext(ctx, "syllabus version stored",
			slog.String("course_id", doc.ID),
			slog.Int("version", out.Version),
			slog.Int("changes", len(out.Changes)),
			slog.Bool("created", out.Created),
		)
	}
	return out, nil
}

func (s *Service) createFirst(ctx context.Context, doc domain.CourseDocument, meta versionMeta, out *CourseImport) error {
	created, err := s.repo.Create(ctx, &domain.Syllabus{
		CourseID:       doc.ID,
		Name:           doc.Name,
		Year:           doc.Year,
		CurrentVersion: 1,
	})
	if err != nil {
		return fmt.Errorf("create syllabus: %w", err)
	}

	summary := meta.summary
	if summary == "" {
		summary = "initial import"
	}
	if _, err := s.repo.CreateVersion(ctx, &domain.SyllabusVersion{
		SyllabusID:    created.ID,
		Version:       1,
		Document:      doc,
		ChangeSummary: summary,
		Editor:        meta.editor,
	}); err != nil {
		return fmt.Errorf("create version: %w", err)
	}

	out.Version = 1
	out.Created = true
	out.Changed = true
	return nil
}
