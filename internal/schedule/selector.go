package schedule

// DefaultDetectionWindow is the number of leading block lines inspected when
// choosing a dialect.
const DefaultDetectionWindow = 25

type dialectCandidate struct {
	detect func(tokens []Token) bool
	parser DialectParser
}

// Selector picks the parser for a block. Candidates are evaluated in order;
// the first match wins.
type Selector struct {
	window     int
	candidates []dialectCandidate
}

// NewSelector creates a Selector that knows the flat and nested layouts.
// The flat layout is checked first.
func NewSelector(window int) *Selector {
	if window <= 0 {
		window = DefaultDetectionWindow
	}
	return &Selector{
		window: window,
		candidates: []dialectCandidate{
			{detect: hasKind(TokenDay), parser: flatParser{}},
			{detect: hasKind(TokenActivities), parser: nestedParser{}},
		},
	}
}

// Select returns the parser for b or a *DialectUnrecognizedError.
func (s *Selector) Select(b Block) (DialectParser, error) {
	n := min(len(b.Lines), s.window)
	tokens := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		tokens = append(tokens, Lex(b.Lines[i], b.LineNo(i)))
	}

	for _, c := range s.candidates {
		if c.detect(tokens) {
			return c.parser, nil
		}
	}
	return nil, &DialectUnrecognizedError{BlockIndex: b.Index}
}

func hasKind(kind TokenKind) func([]Token) bool {
	return func(tokens []Token) bool {
		for _, t := range tokens {
			if t.Kind == kind {
				return true
			}
		}
		return false
	}
}
