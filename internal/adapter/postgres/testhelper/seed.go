package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// UniqueCourseID returns a course id that does not collide with other tests
// sharing the container.
func UniqueCourseID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SampleDocument returns a small valid course document.
func SampleDocument(courseID string) domain.CourseDocument {
	return domain.CourseDocument{
		ID:   courseID,
		Name: "Sample Course",
		Year: "2025",
		Schedule: domain.Schedule{CalendarEntries: []domain.CalendarEntry{{
			Date:         "2025-03-04",
			DayOfWeekHeb: "שלישי",
			DayOfWeekEn:  "Tuesday",
			TimeSlots: []domain.TimeSlot{{
				StartTime:       "08:30",
				EndTime:         "10:00",
				Subject:         "Introduction",
				Instructors:     []string{"Dr. Levi"},
				ActivityType:    "Lecture",
				AttendingGroups: []string{domain.AllStudents},
			}},
		}}},
	}
}

// SeedSyllabus inserts a syllabus at version 1 with the given document.
func SeedSyllabus(t *testing.T, pool *pgxpool.Pool, doc domain.CourseDocument) domain.Syllabus {
	t.Helper()
	ctx := context.Background()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("SeedSyllabus: marshal document: %v", err)
	}

	var s domain.Syllabus
	err = pool.QueryRow(ctx,
		`INSERT INTO syllabi (course_id, name, year, current_version)
		 VALUES ($1, $2, $3, 1)
		 RETURNING id, course_id, name, year, current_version, created_at, updated_at`,
		doc.ID, doc.Name, doc.Year,
	).Scan(&s.ID, &s.CourseID, &s.Name, &s.Year, &s.CurrentVersion, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("SeedSyllabus: insert syllabus: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO syllabus_versions (syllabus_id, version, document, change_summary, editor)
		 VALUES ($1, 1, $2, 'seed', 'testhelper')`,
		s.ID, raw,
	)
	if err != nil {
		t.Fatalf("SeedSyllabus: insert version: %v", err)
	}

	return s
}
