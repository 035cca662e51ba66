package domain

import (
	"fmt"
	"strings"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// faultCoverage counts detected mutants against all mutants.
func faultCoverage(mutants []m.MutantResult) (detected, total int) {
	for _, mutant := range mutants {
		total++

		if mutant.Detected() {
			detected++
		}
	}

	return detected, total
}

// faultCoverageSummary renders the informational fault-coverage section.
// Survived mutants are listed with their hint when the mutant carries one.
func faultCoverageSummary(mutants []m.MutantResult) string {
	detected, total := faultCoverage(mutants)

	var out strings.Builder

	if total == 0 {
		out.WriteString("No faults were generated for this implementation.")
		return out.String()
	}

	fmt.Fprintf(&out, "**Faults detected: %d / %d (%.1f%%)**\n",
		detected, total, float64(detected)/float64(total)*100)

	var survived []m.MutantResult

	for _, mutant := range mutants {
		if !mutant.Detected() {
			survived = append(survived, mutant)
		}
	}

	if len(survived) == 0 {
		return out.String()
	}

	out.WriteString("\nFaults not detected by your tests:\n")

	for _, mutant := range survived {
		fmt.Fprintf(&out, "\n%s %s (%s)\n", failGlyph, mutant.DisplayName(), mutant.Location)

		if mutant.Prompt != "" {
			fmt.Fprintf(&out, "> %s\n", mutant.Prompt)
		}
	}

	return out.String()
}
