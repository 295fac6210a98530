package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Reference years outside this range are rejected at the edges.
const (
	MinReferenceYear = 2000
	MaxReferenceYear = 2100
)

// ValidReferenceYear reports whether year can anchor year-less dates.
func ValidReferenceYear(year int) bool {
	return year >= MinReferenceYear && year <= MaxReferenceYear
}

// NormalizeDate converts a source date into YYYY-MM-DD.
//
// Accepted forms: D.M, D.M.YY, D.M.YYYY and an already normalized
// YYYY-MM-DD. A two-digit year takes the century of referenceYear and a
// missing year is referenceYear itself. The result must be a real calendar
// date; anything else reports false.
func NormalizeDate(raw string, referenceYear int) (string, bool) {
	s := unquote(raw)
	if s == "" {
		return "", false
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.DateOnly), true
	}

	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '/' })
	if len(parts) < 2 || len(parts) > 3 {
		return "", false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}

	year := referenceYear
	if len(parts) == 3 {
		y, err := strconv.Atoi(parts[2])
		if err != nil {
			return "", false
		}
		switch len(parts[2]) {
		case 2:
			year = referenceYear/100*100 + y
		case 4:
			year = y
		default:
			return "", false
		}
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(time.DateOnly), true
}

// NormalizeTimeRange converts "H", "H:MM", "H-H" or "HH:MM-HH:MM" into a
// zero-padded start and end. A missing end is one hour after the start with
// the same minute, capped at 23:59.
func NormalizeTimeRange(raw string) (start, end string, ok bool) {
	s := unquote(raw)
	s = strings.NewReplacer("–", "-", "—", "-").Replace(s)
	if s == "" {
		return "", "", false
	}

	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return "", "", false
	}

	sh, sm, ok := parseClock(parts[0])
	if !ok {
		return "", "", false
	}

	var eh, em int
	if len(parts) == 2 {
		eh, em, ok = parseClock(parts[1])
		if !ok {
			return "", "", false
		}
	} else {
		eh, em = sh+1, sm
		if eh > 23 {
			eh, em = 23, 59
		}
	}

	return formatClock(sh, sm), formatClock(eh, em), true
}

func parseClock(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	hs, ms, hasMinute := strings.Cut(s, ":")

	if len(hs) == 0 || len(hs) > 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(hs)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}

	if hasMinute {
		if len(ms) != 2 {
			return 0, 0, false
		}
		minute, err = strconv.Atoi(ms)
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, false
		}
	}
	return hour, minute, true
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// instructorSeparators maps conjunction markers onto the comma separator.
var instructorSeparators = strings.NewReplacer(
	" / ", ",",
	" ו ", ",",
	" & ", ",",
)

// SplitInstructors splits a free-text instructor list into names. The result
// is never nil.
func SplitInstructors(raw string) []string {
	names := []string{}
	s := unquote(raw)
	if s == "" {
		return names
	}

	for _, name := range strings.Split(instructorSeparators.Replace(s), ",") {
		name = strings.TrimSpace(name)
		if name == "" || strings.EqualFold(name, "null") {
			continue
		}
		names = append(names, name)
	}
	return names
}

// unquote trims whitespace and one pair of matching surrounding quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
