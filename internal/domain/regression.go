package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// ErrRegressionMismatch is returned when a fresh report differs from the
// expected one.
var ErrRegressionMismatch = errors.New("report does not match expected report")

// CanonicalReport renders the parts of a report that must be stable between
// runs of the same submission. Timing, captured process output and
// artifacts are left out.
func CanonicalReport(report m.GradingReport) string {
	var out strings.Builder

	fmt.Fprintf(&out, "lint: %s\n", report.Lint.Status)
	fmt.Fprintf(&out, "score: %s / %s\n", formatPoints(report.Score), formatPoints(report.MaxScore))

	units := make([]m.FeedbackUnit, len(report.Tests))
	copy(units, report.Tests)

	sort.SliceStable(units, func(i, j int) bool {
		if units[i].Part != units[j].Part {
			return units[i].Part < units[j].Part
		}

		return units[i].Name < units[j].Name
	})

	for _, unit := range units {
		fmt.Fprintf(&out, "\n== %s", unit.Name)

		if unit.Part != "" {
			fmt.Fprintf(&out, " [%s]", unit.Part)
		}

		fmt.Fprintf(&out, " %s / %s\n", formatPoints(unit.Score), formatPoints(unit.MaxScore))

		if output := strings.TrimRight(unit.Output, "\n"); output != "" {
			out.WriteString(output)
			out.WriteString("\n")
		}
	}

	return out.String()
}

// DiffReports returns a unified diff between the expected and actual
// reports, or an empty string when they match.
func DiffReports(expected, actual m.GradingReport) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(CanonicalReport(expected)),
		B:        difflib.SplitLines(CanonicalReport(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff reports: %w", err)
	}

	return text, nil
}

func formatPoints(points float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", points), "0"), ".")
}
