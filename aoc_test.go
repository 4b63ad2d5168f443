package aoc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `/*
want=CMZ

    [D]
[N] [C]
 1   2

move 1 from 2 to 1
*/`,
			want: sample{
				want: "CMZ",
				input: `    [D]
[N] [C]
 1   2

move 1 from 2 to 1
`,
			},
		},
		{
			comment: `// want=45000`,
			want:    sample{want: "45000"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, want %+v", tt.comment, got, tt.want)
		}
	}

	if got, ok := parseSample("// D1p1 solves part one."); ok {
		t.Errorf("parseSample of a plain comment = %+v; want no sample", got)
	}
}

const testSource = `package main

/*
want=6

1
2
3
*/
func (s solver) D1p1() any { return 0 }

// want=3
func (s solver) D1p2() any { return 0 }

// want=?
func (s solver) D2p1() any { return 0 }

// D2p2 has no sample.
func (s solver) D2p2() any { return 0 }
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(testSource))
	want := map[string]sample{
		"D1p1": {want: "6", input: "1\n2\n3\n"},
		"D1p2": {want: "3", input: "1\n2\n3\n"},
		"D2p1": {want: "?", input: "1\n2\n3\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any {
	sum := 0
	for _, f := range strings.Fields(s.Text()) {
		sum += Int(f)
	}
	return sum
}

func (s testSolver) D1p2() any {
	return len(strings.Fields(s.Text()))
}

func (s testSolver) D2p1() any {
	return "##\n.."
}

func (s testSolver) helper() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	var names []string
	for _, p := range days[1].parts {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"D1p1", "D1p2"}, names); diff != "" {
		t.Errorf("day 1 parts mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDaySamples(t *testing.T) {
	defer func(v bool) { flagOnlySample = v }(flagOnlySample)
	flagOnlySample = true

	samples := extractSamples([]byte(testSource))
	slvr := &testSolver{}
	days := extractMethods(slvr)

	var buf bytes.Buffer
	if !runDay(&buf, slvr, 2022, days[1], samples) {
		t.Fatalf("day 1 samples failed:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "part 1 sample: 6 ✅") {
		t.Errorf("missing part 1 result in:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "part 2 sample: 3 ✅") {
		t.Errorf("missing part 2 result in:\n%s", buf.String())
	}

	buf.Reset()
	if !runDay(&buf, slvr, 2022, days[2], samples) {
		t.Fatalf("unchecked sample failed:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "##\n..") {
		t.Errorf("unchecked sample output not printed:\n%s", buf.String())
	}

	buf.Reset()
	samples["D1p2"] = sample{want: "4", input: "1\n2\n3\n"}
	if runDay(&buf, slvr, 2022, days[1], samples) {
		t.Errorf("mismatched sample passed:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "want 4") {
		t.Errorf("missing mismatch report in:\n%s", buf.String())
	}
}

func TestInputFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("a\nb\n\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(InputEnv, path)

	p := &Puzzle{year: 2022, day: day{day: 1}}
	if got := string(p.Input()); got != "a\nb\n\n" {
		t.Errorf("Input = %q", got)
	}
	if got := p.Text(); got != "a\nb" {
		t.Errorf("Text = %q", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "x", "y"); got != "x" {
		t.Errorf("Or = %q, want x", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}
