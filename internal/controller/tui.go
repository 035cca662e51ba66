package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// TUI prints like SimpleUI but opens saved reports in a scrollable viewer.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// ViewReport opens the report in a full-screen pager. Press q to quit.
func (t *TUI) ViewReport(ctx context.Context, report m.GradingReport) error {
	title := fmt.Sprintf("Grading report: %s / %s", formatPoints(report.Score), formatPoints(report.MaxScore))
	viewer := newReportViewer(title, renderReport(report, renderOptions{hidden: true}))

	program := tea.NewProgram(
		viewer,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	)

	_, err := program.Run()

	return err
}

var (
	viewerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
				Border(lipgloss.RoundedBorder())
	viewerFooterStyle = lipgloss.NewStyle().Faint(true)
)

type reportViewer struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newReportViewer(title, content string) reportViewer {
	return reportViewer{title: title, content: content}
}

func (v reportViewer) Init() tea.Cmd {
	return nil
}

func (v reportViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		margin := lipgloss.Height(v.header()) + lipgloss.Height(v.footer())

		if !v.ready {
			v.viewport = viewport.New(msg.Width, msg.Height-margin)
			v.viewport.SetContent(v.content)
			v.ready = true
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = msg.Height - margin
		}
	}

	var cmd tea.Cmd

	v.viewport, cmd = v.viewport.Update(msg)

	return v, cmd
}

func (v reportViewer) View() string {
	if !v.ready {
		return "\n  Loading report..."
	}

	return fmt.Sprintf("%s\n%s\n%s", v.header(), v.viewport.View(), v.footer())
}

func (v reportViewer) header() string {
	return viewerTitleStyle.Render(v.title)
}

func (v reportViewer) footer() string {
	percent := 100.0
	if v.ready {
		percent = v.viewport.ScrollPercent() * 100
	}

	help := "↑/↓ scroll • pgup/pgdn page • q quit"

	return viewerFooterStyle.Render(strings.Join([]string{help, fmt.Sprintf("%3.f%%", percent)}, "  "))
}
