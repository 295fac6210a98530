package schedule

import (
	"regexp"
	"strings"
)

// TokenKind classifies one input line.
type TokenKind int

const (
	TokenBlank TokenKind = iota
	TokenComment
	TokenCourse       // course: <id or name>
	TokenDay          // - day: <label>
	TokenDate         // - date: <date>
	TokenTime         // - time: <range>
	TokenHours        // - hours: <range>
	TokenGroup        // group_xx:
	TokenActivities   // activities:
	TokenActivityItem // - group: <name>
	TokenSection      // any other key with no value, e.g. "schedule:"
	TokenProperty     // key: value
	TokenUnrecognized
)

var tokenKindNames = [...]string{
	TokenBlank:        "blank",
	TokenComment:      "comment",
	TokenCourse:       "course",
	TokenDay:          "day",
	TokenDate:         "date",
	TokenTime:         "time",
	TokenHours:        "hours",
	TokenGroup:        "group",
	TokenActivities:   "activities",
	TokenActivityItem: "activity-item",
	TokenSection:      "section",
	TokenProperty:     "property",
	TokenUnrecognized: "unrecognized",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// Token is one classified line.
type Token struct {
	Kind   TokenKind
	Key    string // property key or group name
	Value  string // unquoted value; empty for null
	Indent int
	Line   int
}

// patterns are matched against a line with comments already stripped.
var patterns = struct {
	course     *regexp.Regexp
	marker     *regexp.Regexp
	group      *regexp.Regexp
	activities *regexp.Regexp
	keyValue   *regexp.Regexp
}{
	course:     regexp.MustCompile(`^course:\s*(.*)$`),
	marker:     regexp.MustCompile(`^-\s*(day|date|time|hours|group):\s*(.*)$`),
	group:      regexp.MustCompile(`^(group_\w+):\s*$`),
	activities: regexp.MustCompile(`^activities:\s*$`),
	keyValue:   regexp.MustCompile(`^(?:-\s*)?([A-Za-z_][A-Za-z0-9_]*):\s*(.*)$`),
}

var markerKinds = map[string]TokenKind{
	"day":   TokenDay,
	"date":  TokenDate,
	"time":  TokenTime,
	"hours": TokenHours,
	"group": TokenActivityItem,
}

// Lex classifies a single line. lineNo is carried into the token for
// diagnostics.
func Lex(line string, lineNo int) Token {
	tok := Token{Line: lineNo, Indent: indentOf(line)}

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		tok.Kind = TokenBlank
		return tok
	case strings.HasPrefix(trimmed, "#"):
		tok.Kind = TokenComment
		return tok
	}

	text := strings.TrimSpace(stripComment(trimmed))

	if m := patterns.course.FindStringSubmatch(text); m != nil {
		tok.Kind = TokenCourse
		tok.Value = scalar(m[1])
		return tok
	}
	if m := patterns.marker.FindStringSubmatch(text); m != nil {
		tok.Kind = markerKinds[m[1]]
		tok.Key = m[1]
		tok.Value = scalar(m[2])
		return tok
	}
	if m := patterns.group.FindStringSubmatch(text); m != nil {
		tok.Kind = TokenGroup
		tok.Key = m[1]
		return tok
	}
	if patterns.activities.MatchString(text) {
		tok.Kind = TokenActivities
		tok.Key = "activities"
		return tok
	}
	if m := patterns.keyValue.FindStringSubmatch(text); m != nil {
		tok.Key = m[1]
		if strings.TrimSpace(m[2]) == "" {
			tok.Kind = TokenSection
			return tok
		}
		tok.Kind = TokenProperty
		tok.Value = scalar(m[2])
		return tok
	}

	tok.Kind = TokenUnrecognized
	tok.Value = text
	return tok
}

// scalar unquotes a value and maps YAML null spellings to "".
func scalar(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "null", "Null", "NULL", "~":
		return ""
	}
	return unquote(s)
}

// stripComment removes a trailing "# ..." comment that is not inside single
// or double quotes. A '#' only starts a comment at the beginning or after
// whitespace. A quote only opens after whitespace or ':', so apostrophes
// inside words (ג') are literal.
func stripComment(s string) string {
	var quote rune
	prev := ' '
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case (r == '"' || r == '\'') && (prev == ' ' || prev == '\t' || prev == ':'):
			quote = r
		case r == '#' && (prev == ' ' || prev == '\t'):
			return s[:i]
		}
		prev = r
	}
	return s
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}
