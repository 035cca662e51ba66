package domain

import (
	"fmt"
	"strings"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

const (
	resubmitInstruction = "Please fix the above failing tests and resubmit to receive feedback on how many faults your tests detect."
	noTestFilesAdvice   = "No test files were found in your submission, so your tests could not be evaluated. Add your tests and resubmit."

	skippedMutationAdvice = "Some of your tests failed against your own implementation, so mutation testing of your implementation was skipped. Make all of your tests pass and resubmit to see which faults they detect."
)

// failingTestsAdvice explains which student tests failed against the
// instructor's reference implementation.
func failingTestsAdvice(failing []m.TestResult) string {
	var out strings.Builder

	out.WriteString("Your tests must pass against the instructor's implementation before they can be checked for detecting faults. ")
	out.WriteString("The following tests failed:\n")

	for _, test := range failing {
		fmt.Fprintf(&out, "\n%s %s\n", failGlyph, test.Name)

		if output := strings.TrimRight(test.Output, "\n"); output != "" {
			fmt.Fprintf(&out, "```\n%s\n```\n", output)
		}
	}

	out.WriteString("\n")
	out.WriteString(resubmitInstruction)

	return out.String()
}

func compileFailureAdvice(err error) string {
	return fmt.Sprintf("Your tests could not be compiled:\n```\n%s\n```\n\nFix the compilation errors and resubmit.",
		strings.TrimRight(toolOutput(err), "\n"))
}

func testRunFailureAdvice(err error) string {
	return fmt.Sprintf("Your tests could not be run:\n```\n%s\n```\n\nCheck that your tests finish within the time limit and resubmit.",
		strings.TrimRight(toolOutput(err), "\n"))
}

func mutationFailureAdvice(err error) string {
	if err == nil {
		return ""
	}

	return "Mutation testing could not be completed, so faults detected by your tests could not be counted. Please contact your instructor if this persists."
}

func stagingAdvice(err error) string {
	return fmt.Sprintf("Your files could not be prepared for testing: %v", err)
}
