// Package aoc is a quick & dirty harness for solving the Advent of Code 2022
// puzzles. Solvers are methods named D{day}p{part} and carry their sample
// input and expected answer in their doc comments.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"

	"github.com/maisem/aoc2022/internal/log"
)

// InputEnv names the environment variable holding the path of the puzzle
// input. When set it takes precedence over the cached or fetched input.
const InputEnv = "AOC_INPUT"

// unchecked is the sample answer that disables verification.
const unchecked = "?"

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\n[ \t]*\n(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}, true
	}
	return sample{}, false
}

func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		logger().Fatal().Err(err).Msg("parsing source to extract samples")
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded (as a pointer) in the solver struct passed to Run. It
// gives the solver access to the input of the part currently running.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Input returns the raw input of the running part.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if path := os.Getenv(InputEnv); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			logger().Fatal().Err(err).Str("env", InputEnv).Msg("reading input")
		}
		return b
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// Text returns the input as text, without the final newline.
func (p *Puzzle) Text() string {
	return strings.TrimRight(string(p.Input()), "\n")
}

// Debugf logs only while running the sample, which keeps the real input
// from flooding the terminal.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		p.log().Debug().Msgf(format, args...)
	}
}

func (p *Puzzle) log() *zerolog.Logger {
	l := logger().With().Int("day", p.day.day).Str("part", p.solver.Part).Logger()
	return &l
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		logger().Fatal().Str("solver", p.solver.Name).Msg("no sample found")
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

// extractMethods collects the methods named D{day}p{part} of the struct x
// points to. The methods must have the signature func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		logger().Fatal().Msgf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			logger().Fatal().Str("method", mn).Msg("solver method must be func() any")
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
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
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	cfg := log.Config{}
	if flagDebug {
		cfg.Level = "debug"
	}
	log.Configure(cfg)
})

func logger() *zerolog.Logger {
	l := log.WithComponent("aoc")
	return &l
}

// runDay runs every part of d against its sample and then the real input,
// writing the results to w. It reports false if a sample did not match.
func runDay(w io.Writer, slvr any, year int, d day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	fmt.Fprintln(w, "Running day", d.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range d.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			elapsed := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Fprintf(w, "part %s: %v (took %v) \n", ps.Part, got, elapsed)
				continue
			}
			s := p.Sample()
			switch {
			case s.want == unchecked:
				fmt.Fprintf(w, "part %s sample: (%v)\n%v\n", ps.Part, elapsed, got)
			case fmt.Sprint(got) != s.want:
				fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, s.want)
				return false
			default:
				fmt.Fprintf(w, "part %s sample: %v ✅ (%v) \n", ps.Part, got, elapsed)
			}
		}
	}
	return true
}

// Run runs the solvers of slvr, a pointer to a struct embedding *Puzzle.
// src is the source file declaring the solvers, from which the samples are
// read.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			logger().Fatal().Int("day", flagCurDay).Msg("no such day")
		}
		runDay(os.Stdout, slvr, year, d, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, dn := range dayNums {
		runDay(os.Stdout, slvr, year, days[dn], samples)
		fmt.Println()
	}
}

var session = sync.OnceValue(func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	logger().Info().Str("url", url).Msg("fetching input")
	res := MustGet(http.DefaultClient.Do(request("GET", url, nil)))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		logger().Fatal().Str("url", url).Str("status", res.Status).Msg("bad status fetching input")
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
