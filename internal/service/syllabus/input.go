package syllabus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
)

const (
	maxImportBytes   = 2 << 20
	maxSummaryLength = 500
	maxEditorLength  = 100
)

var referenceYearMessage = fmt.Sprintf("must be between %d and %d", schedule.MinReferenceYear, schedule.MaxReferenceYear)

// ImportInput holds the raw schedule text to compile and store.
type ImportInput struct {
	Text          string
	ReferenceYear int // 0 means the configured default
	Editor        string
	ChangeSummary string
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(i.Text) > maxImportBytes {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too large"})
	}
	if i.ReferenceYear != 0 && !schedule.ValidReferenceYear(i.ReferenceYear) {
		errs = append(errs, domain.FieldError{Field: "reference_year", Message: referenceYearMessage})
	}
	errs = append(errs, validateMeta(i.Editor, i.ChangeSummary)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput replaces the document of an existing syllabus.
type UpdateInput struct {
	CourseID      string
	Document      domain.CourseDocument
	Editor        string
	ChangeSummary string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.CourseID) == "" {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if i.Document.ID != "" && i.Document.ID != i.CourseID {
		errs = append(errs, domain.FieldError{Field: "document.id", Message: "must match course_id"})
	}
	var ve *domain.ValidationError
	if err := i.Document.Validate(); errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			// An omitted id is filled from the path.
			if fe.Field == "id" && i.Document.ID == "" {
				continue
			}
			errs = append(errs, domain.FieldError{Field: "document." + fe.Field, Message: fe.Message})
		}
	}
	errs = append(errs, validateMeta(i.Editor, i.ChangeSummary)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds listing parameters.
type ListInput struct {
	Search *string
	Year   *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if i.Search != nil && len(*i.Search) > 200 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateMeta(editor, summary string) []domain.FieldError {
	var errs []domain.FieldError
	if len(editor) > maxEditorLength {
		errs = append(errs, domain.FieldError{Field: "editor", Message: "max 100 characters"})
	}
	if len(summary) > maxSummaryLength {
		errs = append(errs, domain.FieldError{Field: "change_summary", Message: "max 500 characters"})
	}
	return errs
}
