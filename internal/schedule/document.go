package schedule

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

type documentFile struct {
	Courses []domain.CourseDocument `yaml:"courses"`
}

// WriteYAML emits courses as a "courses:" document.
func WriteYAML(w io.Writer, courses []domain.CourseDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documentFile{Courses: courses}); err != nil {
		return fmt.Errorf("encode courses: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}

// ReadYAML parses a document written by WriteYAML.
func ReadYAML(r io.Reader) ([]domain.CourseDocument, error) {
	var f documentFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return f.Courses, nil
}

// FileName is the conventional output file name for a course.
func FileName(course domain.CourseDocument) string {
	return course.ID + "_course_data.yaml"
}
