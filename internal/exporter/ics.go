// Package exporter renders course documents as iCalendar feeds.
package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const (
	productID       = "-//syllabus-backend//schedule//EN"
	defaultDuration = time.Hour
	dateLayout      = "2006-01-02"
	clockLayout     = "2006-01-02 15:04"
)

// WriteICS writes one VEVENT per time slot of the course. Timed slots are
// placed in tz (UTC when nil); slots without a start time become all-day
// events. Entries with an unparseable date are skipped.
func WriteICS(w io.Writer, course domain.CourseDocument, tz *time.Location) error {
	if tz == nil {
		tz = time.UTC
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(course.Name)
	cal.SetXWRTimezone(tz.String())

	stamp := time.Now().UTC()
	for _, entry := range course.Schedule.CalendarEntries {
		day, err := time.ParseInLocation(dateLayout, entry.Date, tz)
		if err != nil {
			continue
		}
		for i, slot := range entry.TimeSlots {
			event := cal.AddEvent(eventUID(course.ID, entry.Date, slot, i))
			event.SetDtStampTime(stamp)
			event.SetSummary(eventSummary(slot))
			if slot.Location != "" {
				event.SetLocation(slot.Location)
			}
			if desc := eventDescription(slot); desc != "" {
				event.SetDescription(desc)
			}

			start, end, ok := slotBounds(entry.Date, slot, tz)
			if !ok {
				event.SetAllDayStartAt(day)
				event.SetAllDayEndAt(day.AddDate(0, 0, 1))
				continue
			}
			event.SetStartAt(start)
			event.SetEndAt(end)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	return nil
}

func slotBounds(date string, slot domain.TimeSlot, tz *time.Location) (time.Time, time.Time, bool) {
	if !slot.Timed() {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.ParseInLocation(clockLayout, date+" "+slot.StartTime, tz)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end := start.Add(defaultDuration)
	if slot.EndTime != "" {
		if t, err := time.ParseInLocation(clockLayout, date+" "+slot.EndTime, tz); err == nil && t.After(start) {
			end = t
		}
	}
	return start, end, true
}

// eventUID is stable across exports of the same document.
func eventUID(courseID, date string, slot domain.TimeSlot, index int) string {
	clock := "allday"
	if slot.Timed() {
		clock = strings.ReplaceAll(slot.StartTime, ":", "")
	}
	return fmt.Sprintf("%s-%s-%s-%d@syllabus", courseID, strings.ReplaceAll(date, "-", ""), clock, index)
}

func eventSummary(slot domain.TimeSlot) string {
	if slot.ActivityType == "" {
		return slot.Subject
	}
	return fmt.Sprintf("%s (%s)", slot.Subject, slot.ActivityType)
}

func eventDescription(slot domain.TimeSlot) string {
	var lines []string
	if len(slot.Instructors) > 0 {
		lines = append(lines, "Instructors: "+strings.Join(slot.Instructors, ", "))
	}
	if len(slot.AttendingGroups) > 0 {
		lines = append(lines, "Groups: "+strings.Join(slot.AttendingGroups, ", "))
	}
	if slot.Details != "" {
		lines = append(lines, slot.Details)
	}
	return strings.Join(lines, "\n")
}
