package schedule

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var hebrewDays = [...]string{
	time.Sunday:    "יום ראשון",
	time.Monday:    "יום שני",
	time.Tuesday:   "יום שלישי",
	time.Wednesday: "יום רביעי",
	time.Thursday:  "יום חמישי",
	time.Friday:    "יום שישי",
	time.Saturday:  "יום שבת",
}

var hebrewToEnglish = func() map[string]string {
	m := make(map[string]string, len(hebrewDays))
	for d, heb := range hebrewDays {
		m[heb] = time.Weekday(d).String()
	}
	return m
}()

// dayNames returns the Hebrew and English day names for an ISO date. An
// explicit source label is preferred over the computed weekday.
func dayNames(date, label string) (heb, en string) {
	label = strings.Join(strings.Fields(label), " ")
	if label != "" {
		if en, ok := hebrewToEnglish[label]; ok {
			return label, en
		}
		for d, name := range hebrewDays {
			if strings.EqualFold(label, time.Weekday(d).String()) {
				return name, time.Weekday(d).String()
			}
		}
		return label, ""
	}

	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return "", ""
	}
	return hebrewDays[t.Weekday()], t.Weekday().String()
}

type dateBucket struct {
	date     string
	dayLabel string
	slots    []domain.TimeSlot
}

// buildDocument assembles the course document for one parsed block.
// Events with invalid dates are dropped with a warning.
func buildDocument(res ParseResult, referenceYear int) (domain.CourseDocument, []Warning, error) {
	var warnings []Warning

	id, name := res.CourseID, res.NameHint
	if id == "" {
		id = domain.Slugify(name)
	}
	if name == "" {
		name = id
	}
	if id == "" {
		return domain.CourseDocument{}, nil, ErrMissingCourseID
	}

	buckets := make(map[string]*dateBucket)
	for _, ev := range res.Events {
		if ev.Subject == "" {
			continue
		}

		date, ok := NormalizeDate(ev.DateRaw, referenceYear)
		if !ok {
			warnings = append(warnings, Warning{
				Line:    ev.Line,
				Message: fmt.Sprintf("invalid date %q, event %q dropped", ev.DateRaw, ev.Subject),
			})
			continue
		}

		start, end, ok := NormalizeTimeRange(ev.TimeRaw)
		if !ok && strings.TrimSpace(ev.TimeRaw) != "" {
			warnings = append(warnings, Warning{
				Line:    ev.Line,
				Message: fmt.Sprintf("invalid time %q, event %q kept without time", ev.TimeRaw, ev.Subject),
			})
		}

		group := ev.AttendingGroup
		if group == "" {
			group = domain.AllStudents
		}

		b, exists := buckets[date]
		if !exists {
			b = &dateBucket{date: date}
			buckets[date] = b
		}
		if b.dayLabel == "" {
			b.dayLabel = ev.DayLabelRaw
		}
		b.slots = append(b.slots, domain.TimeSlot{
			StartTime:       start,
			EndTime:         end,
			Subject:         ev.Subject,
			Location:        ev.Location,
			Instructors:     SplitInstructors(ev.InstructorsRaw),
			ActivityType:    ClassifyActivityType(ev.Subject, ev.Location, ev.ActivityTypeHint),
			AttendingGroups: []string{group},
			Details:         ev.Details,
		})
	}

	if len(buckets) == 0 {
		return domain.CourseDocument{}, warnings, ErrNoEvents
	}

	entries := make([]domain.CalendarEntry, 0, len(buckets))
	for _, b := range buckets {
		slices.SortStableFunc(b.slots, compareSlots)
		heb, en := dayNames(b.date, b.dayLabel)
		entries = append(entries, domain.CalendarEntry{
			Date:         b.date,
			DayOfWeekHeb: heb,
			DayOfWeekEn:  en,
			TimeSlots:    b.slots,
		})
	}
	slices.SortFunc(entries, func(a, b domain.CalendarEntry) int { return cmp.Compare(a.Date, b.Date) })

	doc := domain.CourseDocument{
		ID:       id,
		Name:     name,
		Year:     strconv.Itoa(referenceYear),
		Schedule: domain.Schedule{CalendarEntries: entries},
	}
	doc.StudentGroups = attendingGroups(entries)
	return doc, warnings, nil
}

// attendingGroups lists the named groups that attend at least one slot.
func attendingGroups(entries []domain.CalendarEntry) []string {
	var groups []string
	for _, e := range entries {
		for _, slot := range e.TimeSlots {
			for _, g := range slot.AttendingGroups {
				if g != domain.AllStudents {
					groups = append(groups, g)
				}
			}
		}
	}
	if len(groups) == 0 {
		return nil
	}
	slices.Sort(groups)
	return slices.Compact(groups)
}

// compareSlots orders timed slots by start time and puts untimed slots last.
func compareSlots(a, b domain.TimeSlot) int {
	switch {
	case a.Timed() && b.Timed():
		return cmp.Compare(a.StartTime, b.StartTime)
	case a.Timed():
		return -1
	case b.Timed():
		return 1
	}
	return 0
}
