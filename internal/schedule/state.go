package schedule

import "strings"

// RawEvent is one scheduled item as read from the source, before
// normalization.
type RawEvent struct {
	DateRaw          string
	TimeRaw          string
	DayLabelRaw      string
	Subject          string
	Location         string
	InstructorsRaw   string
	AttendingGroup   string
	ActivityTypeHint string
	Details          string
	Line             int
}

// slotProps is a property buffer for one time slot or activity.
type slotProps struct {
	Subject      string
	Location     string
	Instructors  string
	TypeHint     string
	TimeOverride string
	Details      []string
	written      bool
}

var propertyKeys = map[string]bool{
	"subject": true, "topic": true, "details": true,
	"location": true,
	"instructor": true, "instructors": true, "lecturer": true,
	"type": true, "specific_hours": true,
	"reading_pages": true, "notes": true,
}

// set applies a property line. It reports false for keys it does not know.
func (p *slotProps) set(key, value string) bool {
	if !propertyKeys[key] {
		return false
	}
	switch key {
	case "subject", "topic", "details":
		p.Subject = value
	case "location":
		p.Location = value
	case "instructor", "instructors", "lecturer":
		p.Instructors = value
	case "type":
		p.TypeHint = value
	case "specific_hours":
		p.TimeOverride = value
	case "reading_pages":
		if value != "" {
			p.Details = append(p.Details, "Reading: "+value)
		}
	case "notes":
		if value != "" {
			p.Details = append(p.Details, "Notes: "+value)
		}
	}
	p.written = true
	return true
}

type groupBuffer struct {
	Name  string
	Props slotProps
}

// overlapPolicy decides what happens when a slot has both an ungrouped
// buffer and group buffers at commit time.
type overlapPolicy int

const (
	// overlapShared emits the ungrouped buffer alongside the groups, unless
	// writes interleaved out of order (see writeUngrouped/writeGroup).
	overlapShared overlapPolicy = iota
	// overlapExclusive drops the ungrouped buffer when any group exists.
	overlapExclusive
)

// ParserState is the complete state carried through one block's scan.
type ParserState struct {
	DayLabel string
	Date     string
	Time     string

	// ActiveGroup indexes Groups; -1 routes properties to Ungrouped.
	ActiveGroup int
	GroupIndent int
	Ungrouped   slotProps
	Groups      []groupBuffer

	overlap       overlapPolicy
	lateUngrouped bool
	firstLine     int
}

func newParserState(policy overlapPolicy) ParserState {
	return ParserState{ActiveGroup: -1, overlap: policy}
}

// commit flushes the buffered slot into events and returns the state with
// empty buffers. The context (day, date, time) is kept; callers replace it
// as needed. commit never modifies s.
func commit(s ParserState) (ParserState, []RawEvent) {
	var events []RawEvent

	dropUngrouped := s.overlap == overlapExclusive && len(s.Groups) > 0
	if s.Ungrouped.Subject != "" && !dropUngrouped {
		events = append(events, s.event(s.Ungrouped, ""))
	}
	for _, g := range s.Groups {
		if g.Props.Subject != "" {
			events = append(events, s.event(g.Props, g.Name))
		}
	}

	next := s
	next.ActiveGroup = -1
	next.GroupIndent = 0
	next.Ungrouped = slotProps{}
	next.Groups = nil
	next.lateUngrouped = false
	next.firstLine = 0
	return next, events
}

func (s ParserState) event(p slotProps, group string) RawEvent {
	timeRaw := s.Time
	if p.TimeOverride != "" {
		timeRaw = p.TimeOverride
	}
	return RawEvent{
		DateRaw:          s.Date,
		TimeRaw:          timeRaw,
		DayLabelRaw:      s.DayLabel,
		Subject:          p.Subject,
		Location:         p.Location,
		InstructorsRaw:   p.Instructors,
		AttendingGroup:   group,
		ActivityTypeHint: p.TypeHint,
		Details:          strings.Join(p.Details, "; "),
		Line:             s.firstLine,
	}
}

func (s *ParserState) mark(line int) {
	if s.firstLine == 0 {
		s.firstLine = line
	}
}

// openGroup activates the named group buffer, creating it on first use.
func (s *ParserState) openGroup(name string, indent int) {
	s.GroupIndent = indent
	for i := range s.Groups {
		if s.Groups[i].Name == name {
			s.ActiveGroup = i
			return
		}
	}
	s.Groups = append(s.Groups, groupBuffer{Name: name})
	s.ActiveGroup = len(s.Groups) - 1
}

// appendGroup always starts a new group buffer, even if the name repeats.
func (s *ParserState) appendGroup(name string, indent int) {
	s.Groups = append(s.Groups, groupBuffer{Name: name})
	s.ActiveGroup = len(s.Groups) - 1
	s.GroupIndent = indent
}

func (s *ParserState) groupsWritten() bool {
	for _, g := range s.Groups {
		if g.Props.written {
			return true
		}
	}
	return false
}

// writeUngrouped stores a property for all students. Written after group
// properties it wins: the group buffers are discarded.
func (s *ParserState) writeUngrouped(key, value string) bool {
	if !propertyKeys[key] {
		return false
	}
	s.ActiveGroup = -1
	if s.overlap == overlapShared && s.groupsWritten() {
		s.Groups = nil
		s.lateUngrouped = true
	}
	return s.Ungrouped.set(key, value)
}

// writeGroup stores a property for the active group. Written after a late
// ungrouped write it wins: the ungrouped buffer is discarded.
func (s *ParserState) writeGroup(key, value string) bool {
	if !propertyKeys[key] {
		return false
	}
	if s.lateUngrouped {
		s.Ungrouped = slotProps{}
		s.lateUngrouped = false
	}
	return s.Groups[s.ActiveGroup].Props.set(key, value)
}
