package domain

import (
	"strings"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Hebrew text, hyphens and punctuation are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			r = ' '
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// slugReplacements rewrites academic calendar tokens that commonly appear in
// Hebrew course titles into stable ASCII forms.
var slugReplacements = strings.NewReplacer(
	"תשפ״ד", "2024",
	"תשפ״ה", "2025",
	"תשפ״ו", "2026",
	"סמסטר-א׳", "sem-a",
	"סמסטר-ב׳", "sem-b",
	"סמסטר-קיץ", "sem-summer",
)

// Slugify derives a URL-safe course identifier from a free-text course name.
// Latin letters, digits and Hebrew letters are kept; everything else is
// dropped and runs of separators collapse into a single hyphen.
func Slugify(name string) string {
	s := NormalizeText(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = slugReplacements.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	prevDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r >= 'א' && r <= 'ת':
			b.WriteRune(r)
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
