// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a runner that checks each part against the sample embedded in
// its doc comment, plus the data structures the solutions share.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

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

// extractSamples returns the sample of each function in src, keyed by
// function name. A sample without input reuses the previous function's.
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
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Input returns the puzzle input, or the sample input in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	name := filepath.Join(flagInputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
	b, err := os.ReadFile(name)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	return b
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// Pt3s parses the input as one "x,y,z" point per line. Blank lines are
// skipped. It panics on a malformed line.
func (p *Puzzle) Pt3s() []Pt3Int {
	var pts []Pt3Int
	p.ForLinesY(func(y int, line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		pt, err := ParsePt3(line)
		if err != nil {
			panic(fmt.Errorf("line %d: %w", y+1, err))
		}
		pts = append(pts, pt)
	})
	return pts
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
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

// extractMethods finds the methods of x named D{day}p{part}, which must
// have the signature func() any, and groups them by day.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
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
			return nil, fmt.Errorf("%s has signature %v; want func() any", mn, v.Method(i).Type())
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
	flagInputDir   string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input", ".", "directory holding {year}/{day}.input")
}

var initFlags = sync.OnceFunc(flag.Parse)

func (p *Puzzle) attach(slvr any) {
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

// checkSample runs ps on its sample input and compares the answer with the
// sample's want.
func (p *Puzzle) checkSample(ps partSolver) (any, error) {
	s, ok := p.samples[ps.Name]
	if !ok {
		return nil, fmt.Errorf("no sample found for %v", ps.Name)
	}
	p.solver = ps
	p.SampleMode = true
	got := ps.fn()
	if fmt.Sprint(got) != s.want {
		return got, fmt.Errorf("part %s: %v ❌; want %v", ps.Part, got, s.want)
	}
	return got, nil
}

func runDay(slvr any, year int, d day, samples map[string]sample) {
	p := &Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	p.attach(slvr)
	fmt.Println("Running day", d.day)
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		if !flagSkipSample {
			t0 := time.Now()
			got, err := p.checkSample(ps)
			if err != nil {
				fmt.Println(err)
				return
			}
			fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
		}
		if flagOnlySample {
			continue
		}
		p.solver = ps
		p.SampleMode = false
		p.Input() // fail before the clock starts if the input is missing
		t0 := time.Now()
		got := ps.fn()
		fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
}

func sortedDays(days map[int]day) []int {
	nums := maps.Keys(days)
	slices.Sort(nums)
	return nums
}

// Run runs every D{day}p{part} method of slvr, or only those selected by
// the -day and -part flags. src is the solver's source, from which the
// samples are read. slvr must be a pointer to a struct embedding *Puzzle.
func Run(year int, src []byte, slvr any) {
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		log.Fatalf("Run: %v", err)
	}
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	for _, n := range sortedDays(days) {
		runDay(slvr, year, days[n], samples)
		fmt.Println()
	}
}

// CheckSamples runs every part of slvr on its sample, without reading
// flags or puzzle input, and returns the first wrong or missing answer.
func CheckSamples(year int, src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	p := &Puzzle{
		year:    year,
		samples: samples,
	}
	p.attach(slvr)
	for _, n := range sortedDays(days) {
		p.day = days[n]
		for _, ps := range p.day.parts {
			if _, err := p.checkSample(ps); err != nil {
				return fmt.Errorf("day %d: %w", n, err)
			}
		}
	}
	return nil
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
