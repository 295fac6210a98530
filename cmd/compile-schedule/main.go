// Command compile-schedule converts a schedule text file into one YAML
// document per course.
//
// Usage:
//
//	compile-schedule -in schedule.txt -out-dir out [-year 2025] [-workers 4] [-ics]
//
// Each course is written to <out-dir>/<id>_course_data.yaml; with -ics an
// <id>.ics calendar is written next to it. Reading "-" uses stdin.
//
// Exit codes: 0 = success, 1 = fatal error, 2 = at least one block failed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/exporter"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
)

const (
	exitOK          = 0
	exitFatal       = 1
	exitBlockFailed = 2
)

type options struct {
	in       string
	outDir   string
	year     int
	workers  int
	window   int
	ics      bool
	timezone string
}

func main() {
	var opts options
	flag.StringVar(&opts.in, "in", "", "schedule text file (\"-\" for stdin)")
	flag.StringVar(&opts.outDir, "out-dir", ".", "directory for the generated files")
	flag.IntVar(&opts.year, "year", time.Now().Year(), "reference year for dates without a year")
	flag.IntVar(&opts.workers, "workers", 0, "blocks compiled concurrently (0 = GOMAXPROCS)")
	flag.IntVar(&opts.window, "window", 0, "lines inspected for dialect detection (0 = default)")
	flag.BoolVar(&opts.ics, "ics", false, "also write an iCalendar file per course")
	flag.StringVar(&opts.timezone, "tz", "Asia/Jerusalem", "timezone of the schedule, used by -ics")
	flag.Parse()

	if opts.in == "" {
		fmt.Fprintln(os.Stderr, "Usage: compile-schedule -in schedule.txt -out-dir out")
		os.Exit(exitFatal)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	os.Exit(run(opts, os.Stdin, logger))
}

func run(opts options, stdin io.Reader, logger *slog.Logger) int {
	text, err := readInput(opts.in, stdin)
	if err != nil {
		logger.Error("read input", slog.String("error", err.Error()))
		return exitFatal
	}

	if !schedule.ValidReferenceYear(opts.year) {
		logger.Error("reference year out of range", slog.Int("year", opts.year))
		return exitFatal
	}

	var tz *time.Location
	if opts.ics {
		tz, err = time.LoadLocation(opts.timezone)
		if err != nil {
			logger.Error("load timezone", slog.String("tz", opts.timezone), slog.String("error", err.Error()))
			return exitFatal
		}
	}

	compiler := schedule.NewCompiler(logger, schedule.Config{
		Workers:         opts.workers,
		DetectionWindow: opts.window,
	})
	res, err := compiler.Compile(text, opts.year)
	if err != nil {
		logger.Error("compile", slog.String("error", err.Error()))
		return exitFatal
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		logger.Error("create output dir", slog.String("error", err.Error()))
		return exitFatal
	}

	rejected := 0
	for _, course := range res.Courses {
		path, err := outputPath(opts.outDir, schedule.FileName(course))
		if err != nil {
			logger.Warn("course skipped", slog.String("course", course.ID), slog.String("reason", err.Error()))
			rejected++
			continue
		}
		if err := writeFile(path, func(w io.Writer) error {
			return schedule.WriteYAML(w, []domain.CourseDocument{course})
		}); err != nil {
			logger.Error("write course", slog.String("course", course.ID), slog.String("error", err.Error()))
			return exitFatal
		}
		logger.Info("course written",
			slog.String("course", course.ID),
			slog.String("path", path),
			slog.Int("entries", len(course.Schedule.CalendarEntries)),
		)

		if opts.ics {
			icsPath, err := outputPath(opts.outDir, course.ID+".ics")
			if err != nil {
				logger.Warn("calendar skipped", slog.String("course", course.ID), slog.String("reason", err.Error()))
				rejected++
				continue
			}
			if err := writeFile(icsPath, func(w io.Writer) error {
				return exporter.WriteICS(w, course, tz)
			}); err != nil {
				logger.Error("write calendar", slog.String("course", course.ID), slog.String("error", err.Error()))
				return exitFatal
			}
		}
	}

	s := res.Summary
	logger.Info("compile finished",
		slog.Int("blocks_total", s.BlocksTotal),
		slog.Int("blocks_succeeded", s.BlocksSucceeded),
		slog.Int("blocks_failed", s.BlocksFailed),
		slog.Int("warnings", len(s.Warnings)),
		slog.Duration("duration", s.Duration),
	)
	for _, f := range s.Failures {
		logger.Warn("block failed",
			slog.Int("block", f.BlockIndex),
			slog.Int("line", f.StartLine),
			slog.String("course", f.CourseID),
			slog.String("reason", f.Reason),
		)
	}

	if s.BlocksFailed > 0 || rejected > 0 {
		return exitBlockFailed
	}
	return exitOK
}

func readInput(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// outputPath joins name onto dir and refuses names that would land outside
// it. Course ids come from the input text.
func outputPath(dir, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("unsafe file name %q", name)
	}
	path := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file name %q escapes %s", name, dir)
	}
	return path, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
