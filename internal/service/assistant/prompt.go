package assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
)

const truncatedMarker = "\n# ... truncated"

const systemTemplate = `You answer questions about course schedules using only the syllabus data below.
The data is YAML: one document per course with dated calendar entries and time slots.
If the answer is not in the data, say that the syllabus does not contain it.
Do not invent dates, times, rooms or instructors. Answer in the language of the question.

Syllabus data:
%s`

// buildContext renders documents as YAML and cuts the text to at most
// maxChars characters. maxChars <= 0 disables the limit.
func buildContext(docs []domain.CourseDocument, maxChars int) (string, error) {
	if len(docs) == 0 {
		return "(no syllabi loaded)", nil
	}

	var b strings.Builder
	if err := schedule.WriteYAML(&b, docs); err != nil {
		return "", fmt.Errorf("render context: %w", err)
	}
	return truncateRunes(b.String(), maxChars), nil
}

func truncateRunes(s string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	n := 0
	for i := range s {
		if n == maxChars {
			return s[:i] + truncatedMarker
		}
		n++
	}
	return s
}

func systemPrompt(context string) string {
	return fmt.Sprintf(systemTemplate, context)
}
