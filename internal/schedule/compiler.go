package schedule

import (
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Config controls the compiler.
type Config struct {
	// Workers bounds the number of blocks compiled concurrently.
	Workers int
	// DetectionWindow is the number of leading lines used to pick a dialect.
	DetectionWindow int
}

// BlockFailure describes one block that produced no document.
type BlockFailure struct {
	BlockIndex int    `json:"block_index"`
	StartLine  int    `json:"start_line"`
	CourseID   string `json:"course_id,omitempty"`
	Reason     string `json:"reason"`
	Err        error  `json:"-"`
}

// Summary reports the outcome of one compile run.
type Summary struct {
	BlocksTotal     int            `json:"blocks_total"`
	BlocksSucceeded int            `json:"blocks_succeeded"`
	BlocksFailed    int            `json:"blocks_failed"`
	Failures        []BlockFailure `json:"failures,omitempty"`
	Warnings        []Warning      `json:"warnings,omitempty"`
	Duration        time.Duration  `json:"duration_ns"`
}

// Result is the output of Compile: documents in input order plus the summary.
type Result struct {
	Courses []domain.CourseDocument `json:"courses"`
	Summary Summary                 `json:"summary"`
}

// Compiler converts schedule text into course documents.
type Compiler struct {
	log      *slog.Logger
	workers  int
	selector *Selector
}

// NewCompiler creates a Compiler.
func NewCompiler(log *slog.Logger, cfg Config) *Compiler {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Compiler{
		log:      log.With("service", "schedule"),
		workers:  workers,
		selector: NewSelector(cfg.DetectionWindow),
	}
}

type blockOutcome struct {
	block    Block
	doc      domain.CourseDocument
	courseID string
	warnings []Warning
	err      error
}

// Compile splits text into course blocks and compiles each one. The only
// error returned is ErrNoCourseBlocksFound; every other failure is reported
// per block in the summary.
func (c *Compiler) Compile(text string, referenceYear int) (*Result, error) {
	start := time.Now()

	blocks, err := Segment(text)
	if err != nil {
		c.log.Warn("nothing to compile", slog.String("error", err.Error()))
		return nil, err
	}

	outcomes := make([]blockOutcome, len(blocks))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, b := range blocks {
		g.Go(func() error {
			outcomes[i] = c.compileBlock(b, referenceYear)
			return nil
		})
	}
	_ = g.Wait()

	res := &Result{Courses: make([]domain.CourseDocument, 0, len(blocks))}
	res.Summary.BlocksTotal = len(blocks)

	for _, o := range outcomes {
		for _, w := range o.warnings {
			w.Block = o.block.Index
			res.Summary.Warnings = append(res.Summary.Warnings, w)
			c.log.Warn("record skipped",
				slog.Int("block", w.Block),
				slog.Int("line", w.Line),
				slog.String("reason", w.Message),
			)
		}

		if o.err != nil {
			res.Summary.BlocksFailed++
			res.Summary.Failures = append(res.Summary.Failures, BlockFailure{
				BlockIndex: o.block.Index,
				StartLine:  o.block.StartLine,
				CourseID:   o.courseID,
				Reason:     o.err.Error(),
				Err:        o.err,
			})
			c.log.Warn("block failed",
				slog.Int("block", o.block.Index),
				slog.Int("line", o.block.StartLine),
				slog.String("course_id", o.courseID),
				slog.String("error", o.err.Error()),
			)
			continue
		}

		res.Summary.BlocksSucceeded++
		res.Courses = append(res.Courses, o.doc)
	}

	res.Summary.Duration = time.Since(start)
	c.log.Info("schedule compiled",
		slog.Int("blocks_total", res.Summary.BlocksTotal),
		slog.Int("blocks_succeeded", res.Summary.BlocksSucceeded),
		slog.Int("blocks_failed", res.Summary.BlocksFailed),
		slog.Int("warnings", len(res.Summary.Warnings)),
		slog.Duration("duration", res.Summary.Duration),
	)
	return res, nil
}

func (c *Compiler) compileBlock(b Block, referenceYear int) blockOutcome {
	out := blockOutcome{block: b}

	parser, err := c.selector.Select(b)
	if err != nil {
		out.err = err
		return out
	}

	parsed := parser.Parse(b)
	out.courseID = parsed.CourseID
	out.warnings = parsed.Warnings

	doc, warnings, err := buildDocument(parsed, referenceYear)
	out.warnings = append(out.warnings, warnings...)
	if err != nil {
		out.err = err
		return out
	}
	out.doc = doc
	out.courseID = doc.ID
	return out
}
