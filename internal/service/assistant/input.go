package assistant

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const (
	maxMessageLength   = 4000
	maxSessionIDLength = 100
	maxHistoryLimit    = 500
)

// AskInput is one user question.
type AskInput struct {
	SessionID string // empty starts a new session
	Message   string
	CourseID  *string // nil asks about all syllabi
}

// Validate checks all fields and collects all errors.
func (i AskInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if utf8.RuneCountInString(i.Message) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 4000 characters"})
	}
	if len(i.SessionID) > maxSessionIDLength {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "max 100 characters"})
	}
	if i.CourseID != nil && strings.TrimSpace(*i.CourseID) == "" {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput selects messages of one session.
type HistoryInput struct {
	SessionID string
	Limit     int // 0 returns the whole session
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.SessionID) == "" {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SessionsInput pages through the conversation log.
type SessionsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i SessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
