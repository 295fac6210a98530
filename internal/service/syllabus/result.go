package syllabus

import (
	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
)

// CourseImport is the outcome of storing one compiled course.
type CourseImport struct {
	CourseID string
	Version  int
	Created  bool
	Changed  bool
	Changes  []domain.FieldChange
}

// ImportResult is returned by Import.
type ImportResult struct {
	Courses []CourseImport
	Summary schedule.Summary
}

// Detail is a syllabus together with one of its versions.
type Detail struct {
	Syllabus domain.Syllabus
	Version  domain.SyllabusVersion
}

// ListResult is one page of syllabi.
type ListResult struct {
	Syllabi []domain.Syllabus
	Total   int
}
