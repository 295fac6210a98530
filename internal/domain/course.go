package domain

// AllStudents is the attending group of a time slot that has no group context.
const AllStudents = "All"

// CourseDocument is the normalized schedule of one course.
type CourseDocument struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Year          string   `yaml:"year" json:"year"`
	Schedule      Schedule `yaml:"schedule" json:"schedule"`
	StudentGroups []string `yaml:"student_groups,omitempty" json:"student_groups,omitempty"`
}

// Schedule holds the dated entries of a course.
type Schedule struct {
	CalendarEntries []CalendarEntry `yaml:"calendar_entries" json:"calendar_entries"`
}

// CalendarEntry is the full set of time slots for one date.
type CalendarEntry struct {
	Date         string     `yaml:"date" json:"date"`
	DayOfWeekHeb string     `yaml:"day_of_week_heb" json:"day_of_week_heb"`
	DayOfWeekEn  string     `yaml:"day_of_week_en,omitempty" json:"day_of_week_en,omitempty"`
	TimeSlots    []TimeSlot `yaml:"time_slots" json:"time_slots"`
}

// TimeSlot is one scheduled activity.
type TimeSlot struct {
	StartTime       string   `yaml:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime         string   `yaml:"end_time,omitempty" json:"end_time,omitempty"`
	Subject         string   `yaml:"subject" json:"subject"`
	Location        string   `yaml:"location,omitempty" json:"location,omitempty"`
	Instructors     []string `yaml:"instructors" json:"instructors"`
	ActivityType    string   `yaml:"activity_type,omitempty" json:"activity_type,omitempty"`
	AttendingGroups []string `yaml:"attending_groups" json:"attending_groups"`
	Details         string   `yaml:"details,omitempty" json:"details,omitempty"`
}

// Timed reports whether the slot has a parsed start time.
func (s TimeSlot) Timed() bool { return s.StartTime != "" }

// SlotCount returns the total number of time slots across all entries.
func (d CourseDocument) SlotCount() int {
	n := 0
	for _, e := range d.Schedule.CalendarEntries {
		n += len(e.TimeSlots)
	}
	return n
}

// Validate checks the structural requirements of a document supplied by a
// client (compiled documents satisfy them by construction).
func (d CourseDocument) Validate() error {
	var errs []FieldError

	if d.ID == "" {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if d.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	for i, e := range d.Schedule.CalendarEntries {
		if !isISODate(e.Date) {
			errs = append(errs, FieldError{
				Field:   fieldIndex("schedule.calendar_entries", i) + ".date",
				Message: "must be YYYY-MM-DD",
			})
		}
		for j, s := range e.TimeSlots {
			prefix := fieldIndex(fieldIndex("schedule.calendar_entries", i)+".time_slots", j)
			if s.Subject == "" {
				errs = append(errs, FieldError{Field: prefix + ".subject", Message: "required"})
			}
			if s.StartTime != "" && !isClock(s.StartTime) {
				errs = append(errs, FieldError{Field: prefix + ".start_time", Message: "must be HH:MM"})
			}
			if s.EndTime != "" && !isClock(s.EndTime) {
				errs = append(errs, FieldError{Field: prefix + ".end_time", Message: "must be HH:MM"})
			}
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
