package mutagens

import (
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

const calcSource = `package calc

func Add(a, b int) int {
	return a + b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
`

func descriptions(mutants []Mutant) []string {
	out := make([]string, 0, len(mutants))
	for _, mt := range mutants {
		out = append(out, mt.Description)
	}

	return out
}

func findMutant(t *testing.T, mutants []Mutant, description string) Mutant {
	t.Helper()

	for _, mt := range mutants {
		if mt.Description == description {
			return mt
		}
	}

	t.Fatalf("no mutant %q in %v", description, descriptions(mutants))

	return Mutant{}
}

func TestGenerateArithmetic(t *testing.T) {
	mutants, err := Generate("calc.go", []byte(calcSource), Arithmetic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mutants) != 4 {
		t.Fatalf("expected 4 mutants, got %d: %v", len(mutants), descriptions(mutants))
	}

	sub := findMutant(t, mutants, "replaced + with -")
	if !strings.Contains(string(sub.Code), "return a - b") {
		t.Errorf("mutated code does not contain the swapped operator:\n%s", sub.Code)
	}

	if sub.Location() != "calc.go:4:4" {
		t.Errorf("expected location calc.go:4:4, got %s", sub.Location())
	}

	if sub.Operator != Arithmetic {
		t.Errorf("expected arithmetic operator, got %s", sub.Operator)
	}

	for _, want := range []string{"replaced + with *", "replaced + with /", "replaced + with %"} {
		findMutant(t, mutants, want)
	}
}

func TestGenerateComparison(t *testing.T) {
	mutants, err := Generate("calc.go", []byte(calcSource), Comparison)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mutants) != 5 {
		t.Fatalf("expected 5 mutants, got %d: %v", len(mutants), descriptions(mutants))
	}

	ge := findMutant(t, mutants, "replaced > with >=")
	if !strings.Contains(string(ge.Code), "if a >= b {") {
		t.Errorf("unexpected mutated code:\n%s", ge.Code)
	}
}

func TestGenerateBranchIf(t *testing.T) {
	mutants, err := Generate("calc.go", []byte(calcSource), Branch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mutants) != 4 {
		t.Fatalf("expected 4 mutants, got %d: %v", len(mutants), descriptions(mutants))
	}

	inverted := findMutant(t, mutants, "inverted condition a > b")
	if !strings.Contains(string(inverted.Code), "if !(a > b) {") {
		t.Errorf("unexpected mutated code:\n%s", inverted.Code)
	}

	findMutant(t, mutants, "replaced condition a > b with true")
	findMutant(t, mutants, "replaced condition a > b with false")

	removed := findMutant(t, mutants, "removed if block")
	if strings.Contains(string(removed.Code), "return a\n") {
		t.Errorf("if block still present:\n%s", removed.Code)
	}

	if removed.StartLine != 8 || removed.EndLine != 10 {
		t.Errorf("expected lines 8-10, got %d-%d", removed.StartLine, removed.EndLine)
	}
}

func TestGenerateBranchElse(t *testing.T) {
	src := `package sign

func Sign(x int) string {
	var s string
	if x < 0 {
		s = "negative"
	} else {
		s = "positive"
	}
	return s
}
`

	mutants, err := Generate("sign.go", []byte(src), Branch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	elseOnly := findMutant(t, mutants, "replaced if statement with its else block")
	if strings.Contains(string(elseOnly.Code), "negative") || !strings.Contains(string(elseOnly.Code), "positive") {
		t.Errorf("unexpected mutated code:\n%s", elseOnly.Code)
	}

	noElse := findMutant(t, mutants, "removed else block")
	if strings.Contains(string(noElse.Code), "positive") || !strings.Contains(string(noElse.Code), "negative") {
		t.Errorf("unexpected mutated code:\n%s", noElse.Code)
	}
}

func TestGenerateBranchLoopAndSwitch(t *testing.T) {
	src := `package loop

func Sum(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}
	switch total {
	case 0:
		return -1
	default:
		return total
	}
}
`

	mutants, err := Generate("loop.go", []byte(src), Branch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mutants) != 3 {
		t.Fatalf("expected 3 mutants, got %d: %v", len(mutants), descriptions(mutants))
	}

	loop := findMutant(t, mutants, "replaced condition i < n with false")
	if !strings.Contains(string(loop.Code), "for i := 0; false; i++ {") {
		t.Errorf("unexpected mutated code:\n%s", loop.Code)
	}

	findMutant(t, mutants, "emptied case body")
	findMutant(t, mutants, "emptied default case body")
}

func TestGenerateBooleanAndLogical(t *testing.T) {
	src := `package flags

func Enabled(a, b bool) bool {
	if a && b {
		return true
	}
	return a || false
}
`

	booleans, err := Generate("flags.go", []byte(src), Boolean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(booleans) != 2 {
		t.Fatalf("expected 2 boolean mutants, got %d: %v", len(booleans), descriptions(booleans))
	}

	flipped := findMutant(t, booleans, "replaced true with false")
	if !strings.Contains(string(flipped.Code), "return false\n") {
		t.Errorf("unexpected mutated code:\n%s", flipped.Code)
	}

	logical, err := Generate("flags.go", []byte(src), Logical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logical) != 2 {
		t.Fatalf("expected 2 logical mutants, got %d: %v", len(logical), descriptions(logical))
	}

	findMutant(t, logical, "replaced && with ||")
	findMutant(t, logical, "replaced || with &&")
}

func TestGenerateSkipsIgnoredLinesAndStrings(t *testing.T) {
	src := `package greet

func Greet(name string, n int) (string, int) {
	return "hello " + name, n + 1 // mutation:ignore
}
`

	mutants, err := Generate("greet.go", []byte(src), Arithmetic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mutants) != 0 {
		t.Fatalf("expected no mutants, got %v", descriptions(mutants))
	}
}

func TestGenerateAllOperatorsProducesParsableCode(t *testing.T) {
	mutants, err := Generate("calc.go", []byte(calcSource))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mutants) != 13 {
		t.Fatalf("expected 13 mutants, got %d: %v", len(mutants), descriptions(mutants))
	}

	seen := map[string]bool{}

	for i, mt := range mutants {
		if seen[mt.ID] {
			t.Errorf("duplicate mutant id %s", mt.ID)
		}

		seen[mt.ID] = true

		if i > 0 && mutants[i-1].StartLine > mt.StartLine {
			t.Errorf("mutants not ordered by line")
		}

		if _, err := parser.ParseFile(token.NewFileSet(), mt.File, mt.Code, 0); err != nil {
			t.Errorf("mutant %q does not parse: %v", mt.Description, err)
		}
	}

	again, err := Generate("calc.go", []byte(calcSource))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range again {
		if again[i].ID != mutants[i].ID {
			t.Fatalf("mutant ids are not stable")
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate("broken.go", []byte("package broken\nfunc {")); err == nil {
		t.Error("expected parse error")
	}

	if _, err := Generate("calc.go", []byte(calcSource), Operator("shuffle")); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("expected ErrUnknownOperator, got %v", err)
	}
}

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator(" Arithmetic ")
	if err != nil || op != Arithmetic {
		t.Errorf("expected arithmetic, got %q (%v)", op, err)
	}

	if _, err := ParseOperator("swap"); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("expected ErrUnknownOperator, got %v", err)
	}
}
