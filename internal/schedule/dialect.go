package schedule

import "fmt"

// Block is the text of one course, starting at its course: line.
type Block struct {
	Index     int
	StartLine int // 1-based line number of Lines[0] in the input
	Lines     []string
}

// LineNo returns the input line number of b.Lines[i].
func (b Block) LineNo(i int) int { return b.StartLine + i }

// Warning is a record-level problem: the unit was skipped, the scan went on.
type Warning struct {
	Block   int    `json:"block"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ParseResult is the output of a dialect parser for one block.
type ParseResult struct {
	CourseID string
	NameHint string
	Events   []RawEvent
	Groups   []string // named groups with at least one emitted event
	Warnings []Warning
}

func (r *ParseResult) warn(tok Token, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{Line: tok.Line, Message: fmt.Sprintf(format, args...)})
}

func (r *ParseResult) addGroup(name string) {
	if name == "" {
		return
	}
	for _, g := range r.Groups {
		if g == name {
			return
		}
	}
	r.Groups = append(r.Groups, name)
}

// DialectParser turns one block of a known layout into raw events.
type DialectParser interface {
	Name() string
	Parse(b Block) ParseResult
}
