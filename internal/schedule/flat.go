package schedule

// flatParser reads the day → date → time layout where group_xx: headers
// introduce per-group overrides inside a time slot:
//
//	course: anatomy-first-part
//	- day: יום שני
//	  - date: "17.3"
//	    - time: "8-10"
//	      subject: "..."
//	      group_1a:
//	        subject: "..."
type flatParser struct{}

func (flatParser) Name() string { return "flat" }

func (flatParser) Parse(b Block) ParseResult {
	var res ParseResult
	st := newParserState(overlapShared)

	flush := func() {
		var events []RawEvent
		st, events = commit(st)
		for _, ev := range events {
			res.addGroup(ev.AttendingGroup)
		}
		res.Events = append(res.Events, events...)
	}

	for i, line := range b.Lines {
		tok := Lex(line, b.LineNo(i))

		switch tok.Kind {
		case TokenBlank, TokenComment, TokenSection:
		case TokenCourse:
			if res.CourseID == "" {
				res.CourseID = tok.Value
				res.NameHint = tok.Value
			}
		case TokenDay:
			flush()
			st.DayLabel = tok.Value
			st.Date = ""
			st.Time = ""
		case TokenDate:
			flush()
			st.Date = tok.Value
			st.Time = ""
		case TokenTime:
			flush()
			st.Time = tok.Value
		case TokenGroup:
			if !flatSlotOpen(st) {
				res.warn(tok, "group %s outside a time slot", tok.Key)
				continue
			}
			st.openGroup(tok.Key, tok.Indent)
		case TokenProperty:
			if !flatSlotOpen(st) {
				res.warn(tok, "property %s outside a time slot", tok.Key)
				continue
			}
			st.mark(tok.Line)
			var ok bool
			if st.ActiveGroup >= 0 && tok.Indent > st.GroupIndent {
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

func flatSlotOpen(st ParserState) bool {
	return st.DayLabel != "" && st.Date != "" && st.Time != ""
}
