package domain

import (
	"time"

	"github.com/google/uuid"
)

// Syllabus is a stored course with its current version pointer.
type Syllabus struct {
	ID             uuid.UUID
	CourseID       string
	Name           string
	Year           string
	CurrentVersion int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SyllabusVersion is an immutable snapshot of a course document.
type SyllabusVersion struct {
	ID            uuid.UUID
	SyllabusID    uuid.UUID
	Version       int
	Document      CourseDocument
	Changes       []FieldChange
	ChangeSummary string
	Editor        string
	CreatedAt     time.Time
}

// FieldChange describes one difference between two documents. Path uses
// dotted notation with list indexes, e.g. "schedule.calendar_entries.0.date".
type FieldChange struct {
	Path     string     `json:"field_path"`
	OldValue any        `json:"old_value,omitempty"`
	NewValue any        `json:"new_value,omitempty"`
	Type     ChangeType `json:"change_type"`
}

// VersionDiff is the comparison of two versions of one syllabus.
type VersionDiff struct {
	CourseID string        `json:"course_id"`
	From     int           `json:"from_version"`
	To       int           `json:"to_version"`
	Changes  []FieldChange `json:"changes"`
	Unified  string        `json:"unified_diff"`
}

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ID        uuid.UUID
	SessionID string
	Role      MessageRole
	Content   string
	CourseID  *string
	CreatedAt time.Time
}

// ChatSession summarizes a conversation for the admin log.
type ChatSession struct {
	SessionID     string
	MessageCount  int
	LastMessageAt time.Time
}
