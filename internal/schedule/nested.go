package schedule

import "github.com/heartmarshall/syllabus-backend/internal/domain"

// nestedParser reads the date → hours → activities layout:
//
//	course: "נוירואנטומיה תשפ״ה"
//	- date: "12.5.25"
//	  events:
//	    - hours: "10-12"
//	      topic: "..."
//	      activities:
//	        - group: "A"
//	          type: "מעבדה"
//	          details: "..."
//	          specific_hours: "10-11"
//
// An hour with activities emits only its activities.
type nestedParser struct{}

func (nestedParser) Name() string { return "nested" }

// nestedScope tracks where properties are routed.
type nestedScope struct {
	hourOpen         bool
	hourIndent       int
	inActivities     bool
	activitiesIndent int
}

func (nestedParser) Parse(b Block) ParseResult {
	var res ParseResult
	st := newParserState(overlapExclusive)
	var scope nestedScope

	flush := func() {
		var events []RawEvent
		st, events = commit(st)
		for _, ev := range events {
			res.addGroup(ev.AttendingGroup)
		}
		res.Events = append(res.Events, events...)
	}
	closeActivities := func() {
		scope.inActivities = false
		st.ActiveGroup = -1
	}

	for i, line := range b.Lines {
		tok := Lex(line, b.LineNo(i))

		if scope.inActivities && tok.Kind != TokenBlank && tok.Kind != TokenComment &&
			tok.Indent <= scope.activitiesIndent &&
			!(tok.Kind == TokenActivityItem && tok.Indent == scope.activitiesIndent) {
			closeActivities()
		}
		if scope.hourOpen && (tok.Kind == TokenProperty || tok.Kind == TokenSection) && tok.Indent <= scope.hourIndent {
			flush()
			scope = nestedScope{}
		}

		switch tok.Kind {
		case TokenBlank, TokenComment, TokenSection:
		case TokenCourse:
			if res.NameHint == "" {
				res.NameHint = tok.Value
				res.CourseID = domain.Slugify(tok.Value)
			}
		case TokenDate:
			flush()
			scope = nestedScope{}
			st.Date = tok.Value
			st.Time = ""
		case TokenHours:
			flush()
			scope = nestedScope{hourOpen: true, hourIndent: tok.Indent}
			st.Time = tok.Value
		case TokenActivities:
			if !scope.hourOpen {
				res.warn(tok, "activities outside an hour")
				continue
			}
			scope.inActivities = true
			scope.activitiesIndent = tok.Indent
		case TokenActivityItem:
			if !scope.inActivities {
				res.warn(tok, "activity %q outside an activities list", tok.Value)
				continue
			}
			st.appendGroup(tok.Value, tok.Indent)
			st.mark(tok.Line)
		case TokenProperty:
			if !scope.hourOpen || st.Date == "" {
				res.warn(tok, "property %s outside an hour", tok.Key)
				continue
			}
			st.mark(tok.Line)
			var ok bool
			if scope.inActivities && st.ActiveGroup >= 0 {
				ok = st.writeGroup(tok.Key, tok.Value)
			} else {
				ok = st.writeUngrouped(tok.Key, tok.Value)
			}
			if !ok {
				res.warn(tok, "unknown property %s", tok.Key)
			}
		default:
			res.warn(tok, "unrecognized %s line", tok.Kind)
		}
	}
	flush()

	return res
}
