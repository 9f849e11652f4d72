// Package aoc is a small harness for solving Advent of Code puzzles,
// plus the parsers the 2023 solutions share.
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the want= samples found in the doc comments of
// the functions in src, keyed by function name. A sample without input
// reuses the input of the previous sample.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// LineError is returned by a line callback that rejected its input.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	ctx       context.Context
	log       zerolog.Logger
	fetcher   Fetcher
	inputPath string
	input     []byte // primed real input; nil until loaded

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) inputURL() string {
	return fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day)
}

// loadInput reads the real input. Without a fetcher a missing file is
// an error; otherwise it is fetched and cached on first use.
func (p *Puzzle) loadInput() error {
	if p.input != nil {
		return nil
	}
	var b []byte
	var err error
	if p.fetcher == nil {
		b, err = os.ReadFile(p.inputPath)
	} else {
		b, err = fileOrFetch(p.ctx, p.fetcher, p.inputPath, p.inputURL())
	}
	if err != nil {
		return err
	}
	p.input = b
	return nil
}

// Input returns the sample input in sample mode and the real input
// otherwise. The real input must already be loaded by the runner.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		panic("aoc: input not loaded")
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) forLines(onLine func(int, string) error) error {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return &LineError{Line: y + 1, Text: s.Text(), Err: err}
		}
	}
	return s.Err()
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
// The first error returned by onLine aborts the whole run.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) {
	if err := p.forLines(onLine); err != nil {
		ev := p.log.Fatal().Err(err)
		var le *LineError
		if errors.As(err, &le) {
			ev = ev.Int("line", le.Line).Str("text", le.Text)
		}
		ev.Msg("malformed input")
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) {
	p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

func (p *Puzzle) Debug(v ...any) {
	p.log.Debug().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debug().Msgf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		p.log.Fatal().Str("solver", p.solver.Name).Msg("no sample found")
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. The methods
// must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInput      string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "input file for -day; default $AOC_DIR/<year>/<day>.input")
}

var initFlags = sync.OnceFunc(flag.Parse)

// defaultInputPath is where the input for a day is cached.
func defaultInputPath(year, day int) string {
	return filepath.Join(Or(os.Getenv("AOC_DIR"), "."), fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}

// runner runs the days of one year.
type runner struct {
	ctx     context.Context
	year    int
	samples map[string]sample
	fetcher Fetcher   // nil means inputs are read, never fetched
	out     io.Writer // answers go here
}

// runDay solves the parts of day. If the real input cannot be loaded,
// the error is logged and the rest of the day is skipped.
func (r *runner) runDay(slvr any, day day, inputPath string) {
	p := Puzzle{
		year:      r.year,
		day:       day,
		samples:   r.samples,
		ctx:       r.ctx,
		fetcher:   r.fetcher,
		inputPath: inputPath,
	}
	fmt.Fprintln(r.out, "Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.log = log.With().Int("day", day.day).Str("part", ps.Part).Logger()

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				if err := p.loadInput(); err != nil {
					p.log.Error().Err(err).Str("path", p.inputPath).Msg("reading input")
					return
				}
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Solve runs one part of slvr against input, without a sample check.
// sampleMode is reported to the solver through Puzzle.SampleMode. It is
// meant for testing solvers.
func Solve(slvr any, day int, part string, input []byte, sampleMode bool) (any, error) {
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	d, ok := days[day]
	if !ok {
		return nil, fmt.Errorf("no day %d", day)
	}
	i := slices.IndexFunc(d.parts, func(ps partSolver) bool { return ps.Part == part })
	if i < 0 {
		return nil, fmt.Errorf("no part %s for day %d", part, day)
	}
	p := &Puzzle{
		day:        d,
		SampleMode: sampleMode,
		ctx:        context.Background(),
		log:        log.Logger,
		solver:     d.parts[i],
		input:      input,
		samples:    map[string]sample{d.parts[i].Name: {input: string(input)}},
	}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	return d.parts[i].fn(), nil
}

// Run solves the puzzles of year implemented as D{day}p{part} methods on
// slvr, a pointer to a struct embedding *Puzzle. src is the source of
// slvr, from which want= samples are read.
func Run(year int, src []byte, slvr any) {
	initFlags()
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal().Err(err).Msg("reading samples")
	}
	days, err := extractMethods(slvr)
	if err != nil {
		log.Fatal().Err(err).Msg("registering solver")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	r := &runner{
		ctx:     ctx,
		year:    year,
		samples: samples,
		fetcher: &HTTPFetcher{Session: SessionFromEnv},
		out:     os.Stdout,
	}
	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatal().Int("day", flagCurDay).Msg("no such day")
		}
		path := defaultInputPath(year, flagCurDay)
		if flagInput != "" {
			// An explicit input is only read.
			path = flagInput
			r.fetcher = nil
		}
		r.runDay(slvr, day, path)
		return
	}
	if flagInput != "" {
		log.Fatal().Msg("-input requires -day")
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		r.runDay(slvr, days[day], defaultInputPath(year, day))
		fmt.Fprintln(r.out)
	}
}
