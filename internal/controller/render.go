package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// renderOptions selects what renderReport includes.
type renderOptions struct {
	hidden bool
}

func renderReport(report m.GradingReport, opts renderOptions) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Score: %s / %s", formatPoints(report.Score), formatPoints(report.MaxScore))))
	b.WriteString("\n")
	b.WriteString("Lint: ")
	b.WriteString(renderStatus(report.Lint.Status))
	b.WriteString("\n\n")
	b.WriteString(renderScoreTable(report.Tests))

	for _, unit := range report.Tests {
		output := strings.TrimRight(unit.Output, "\n")
		hidden := strings.TrimRight(unit.HiddenOutput, "\n")

		if output == "" && (!opts.hidden || hidden == "") {
			continue
		}

		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(unit.Name))
		b.WriteString("\n")

		if output != "" {
			b.WriteString(output)
			b.WriteString("\n")
		}

		if opts.hidden && hidden != "" {
			b.WriteString(faintStyle.Render("Hidden output:"))
			b.WriteString("\n")
			b.WriteString(hidden)
			b.WriteString("\n")
		}
	}

	if lint := strings.TrimRight(report.Lint.Output, "\n"); lint != "" && report.Lint.Status == m.StatusFail {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Lint output"))
		b.WriteString("\n")
		b.WriteString(lint)
		b.WriteString("\n")
	}

	visibility := m.OutputVisible
	if opts.hidden {
		visibility = m.OutputHidden
	}

	if section, ok := report.Output[visibility]; ok && strings.TrimSpace(section.Output) != "" {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Grader output"))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(section.Output, "\n"))
		b.WriteString("\n")
	}

	if len(report.Artifacts) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Artifacts"))
		b.WriteString("\n")

		for _, artifact := range sortedArtifacts(report.Artifacts) {
			fmt.Fprintf(&b, "  %s: %s\n", artifact.Name, artifact.Path)
		}
	}

	return b.String()
}

func renderScoreTable(units []m.FeedbackUnit) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Part", "Unit", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	score, maxScore := 0.0, 0.0

	for _, unit := range units {
		table.Append([]string{
			unit.Part,
			unit.Name,
			fmt.Sprintf("%s / %s", formatPoints(unit.Score), formatPoints(unit.MaxScore)),
		})

		score += unit.Score
		maxScore += unit.MaxScore
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total units %d", len(units)),
		fmt.Sprintf("%s / %s", formatPoints(score), formatPoints(maxScore)),
	})

	table.Render()

	return tableBuffer.String()
}

func renderSpec(spec m.GradingSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Build preset:"), spec.Build.Preset)
	fmt.Fprintf(&b, "Linter: %s (policy %s)\n", valueOrNone(spec.Build.Linter.Preset), spec.Build.Linter.Policy)
	fmt.Fprintf(&b, "Submission files: %s\n", strings.Join(spec.SubmissionFiles.Files, ", "))
	fmt.Fprintf(&b, "Test files: %s\n\n", valueOrNone(strings.Join(spec.SubmissionFiles.TestFiles, ", ")))

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Part", "Unit", "Kind", "Points"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	total, units := 0.0, 0

	for _, part := range spec.Parts {
		for _, unit := range part.Units {
			points := "invalid"
			if maxScore, err := m.MaxScore(unit); err == nil {
				points = formatPoints(maxScore)
				total += maxScore
			}

			table.Append([]string{part.Name, unit.UnitName(), string(unit.Kind()), points})

			units++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Parts %d", len(spec.Parts)),
		fmt.Sprintf("Units %d", units),
		"",
		formatPoints(total),
	})

	table.Render()
	b.WriteString(tableBuffer.String())

	return b.String()
}

func renderDiff(diff string) string {
	if diff == "" {
		return passStyle.Render("Report matches the expected report") + "\n"
	}

	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(titleStyle.Render(strings.TrimRight(line, "\n")))
		case strings.HasPrefix(line, "+"):
			b.WriteString(passStyle.Render(strings.TrimRight(line, "\n")))
		case strings.HasPrefix(line, "-"):
			b.WriteString(failStyle.Render(strings.TrimRight(line, "\n")))
		default:
			b.WriteString(strings.TrimRight(line, "\n"))
		}

		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderStatus(status m.Status) string {
	if status == m.StatusPass {
		return passStyle.Render(string(status))
	}

	return failStyle.Render(string(status))
}

// sortedArtifacts returns the artifacts ordered by name.
func sortedArtifacts(artifacts []m.Artifact) []m.Artifact {
	sorted := make([]m.Artifact, len(artifacts))
	copy(sorted, artifacts)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}

func formatPoints(points float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", points), "0"), ".")
}

func valueOrNone(value string) string {
	if value == "" {
		return "none"
	}

	return value
}
