// Package mutagens generates source-level mutants for Go files.
package mutagens

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"
)

// Operator names a family of mutations.
type Operator string

// Supported mutation operators.
const (
	Arithmetic Operator = "arithmetic"
	Comparison Operator = "comparison"
	Boolean    Operator = "boolean"
	Logical    Operator = "logical"
	Branch     Operator = "branch"
)

// ignoreDirective suppresses mutations on the annotated line and the line after it.
const ignoreDirective = "mutation:ignore"

// ErrUnknownOperator is returned for an operator name that has no generator.
var ErrUnknownOperator = errors.New("unknown mutation operator")

// AllOperators returns every operator in generation order.
func AllOperators() []Operator {
	return []Operator{Arithmetic, Comparison, Boolean, Logical, Branch}
}

// ParseOperator converts a configured name to an Operator.
func ParseOperator(name string) (Operator, error) {
	op := Operator(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := generators[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}

	return op, nil
}

// Mutant is one rewrite of a single source file.
type Mutant struct {
	ID          string
	Operator    Operator
	File        string
	StartLine   int
	EndLine     int
	Description string
	Code        []byte
}

// Location renders the mutant position as file:start:end.
func (mt Mutant) Location() string {
	return fmt.Sprintf("%s:%d:%d", mt.File, mt.StartLine, mt.EndLine)
}

// edit replaces content[start:end] with replacement.
type edit struct {
	start       int
	end         int
	replacement string
	description string
	node        ast.Node
}

type generator func(n ast.Node, fset *token.FileSet, content []byte) []edit

var generators = map[Operator]generator{
	Arithmetic: arithmeticEdits,
	Comparison: comparisonEdits,
	Boolean:    booleanEdits,
	Logical:    logicalEdits,
	Branch:     branchEdits,
}

// Generate parses content as the Go file named file and returns its mutants.
// With no operators every operator is applied.
func Generate(file string, content []byte, operators ...Operator) ([]Mutant, error) {
	if len(operators) == 0 {
		operators = AllOperators()
	}

	for _, op := range operators {
		if _, ok := generators[op]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
		}
	}

	fset := token.NewFileSet()

	parsed, err := parser.ParseFile(fset, file, content, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	ignored := ignoredLines(fset, parsed)

	var mutants []Mutant

	for _, op := range operators {
		gen := generators[op]

		ast.Inspect(parsed, func(n ast.Node) bool {
			if n == nil {
				return false
			}

			for _, e := range gen(n, fset, content) {
				start := fset.Position(e.node.Pos()).Line
				end := fset.Position(e.node.End()).Line

				if ignored[start] {
					continue
				}

				mutants = append(mutants, Mutant{
					ID:          mutantID(file, op, e),
					Operator:    op,
					File:        file,
					StartLine:   start,
					EndLine:     end,
					Description: e.description,
					Code:        replaceRange(content, e.start, e.end, e.replacement),
				})
			}

			return true
		})
	}

	sort.SliceStable(mutants, func(i, j int) bool {
		return mutants[i].StartLine < mutants[j].StartLine
	})

	return mutants, nil
}

func mutantID(file string, op Operator, e edit) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s-%s-%d-%d-%s", file, op, e.start, e.end, e.replacement)))
	return fmt.Sprintf("%x", h)[:16]
}

func ignoredLines(fset *token.FileSet, file *ast.File) map[int]bool {
	lines := map[int]bool{}

	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !strings.Contains(comment.Text, ignoreDirective) {
				continue
			}

			line := fset.Position(comment.Pos()).Line
			lines[line] = true
			lines[line+1] = true
		}
	}

	return lines
}

func offsetForPos(fset *token.FileSet, pos token.Pos) (int, bool) {
	if !pos.IsValid() {
		return 0, false
	}

	file := fset.File(pos)
	if file == nil {
		return 0, false
	}

	return file.Offset(pos), true
}

func nodeRange(fset *token.FileSet, n ast.Node) (int, int, bool) {
	start, ok := offsetForPos(fset, n.Pos())
	if !ok {
		return 0, 0, false
	}

	end, ok := offsetForPos(fset, n.End())
	if !ok {
		return 0, 0, false
	}

	return start, end, true
}

func replaceRange(content []byte, start, end int, replacement string) []byte {
	out := make([]byte, 0, len(content)-(end-start)+len(replacement))
	out = append(out, content[:start]...)
	out = append(out, replacement...)
	out = append(out, content[end:]...)

	return out
}

// operatorEdits swaps a binary operator for each alternative in ops.
func operatorEdits(expr *ast.BinaryExpr, fset *token.FileSet, ops []token.Token) []edit {
	start, ok := offsetForPos(fset, expr.OpPos)
	if !ok {
		return nil
	}

	original := expr.Op.String()

	var edits []edit

	for _, op := range ops {
		if op == expr.Op {
			continue
		}

		edits = append(edits, edit{
			start:       start,
			end:         start + len(original),
			replacement: op.String(),
			description: fmt.Sprintf("replaced %s with %s", original, op),
			node:        expr,
		})
	}

	return edits
}
