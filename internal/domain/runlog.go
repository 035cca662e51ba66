package domain

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// RunLog collects the output of a grading run. It replaces process-wide
// output capture: the orchestrator passes it through every phase and its
// snapshot becomes the report output. Every line is mirrored to slog.
type RunLog struct {
	mu      sync.Mutex
	visible strings.Builder
	hidden  strings.Builder
}

// NewRunLog returns an empty RunLog.
func NewRunLog() *RunLog {
	return &RunLog{}
}

// Visible records a line shown to the student. Visible lines are also
// copied into the hidden section so instructors see the full sequence.
func (l *RunLog) Visible(format string, args ...any) {
	line := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.visible.WriteString(line)
	l.visible.WriteString("\n")
	l.hidden.WriteString(line)
	l.hidden.WriteString("\n")

	slog.Info(line)
}

// Hidden records a line shown to instructors only.
func (l *RunLog) Hidden(format string, args ...any) {
	line := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.hidden.WriteString(line)
	l.hidden.WriteString("\n")

	slog.Debug(line)
}

// Warn records a visible warning and logs it at warn level.
func (l *RunLog) Warn(format string, args ...any) {
	line := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.visible.WriteString("WARNING: ")
	l.visible.WriteString(line)
	l.visible.WriteString("\n")
	l.hidden.WriteString("WARNING: ")
	l.hidden.WriteString(line)
	l.hidden.WriteString("\n")

	slog.Warn(line)
}

// Output returns a snapshot of the captured output.
func (l *RunLog) Output() m.ReportOutput {
	l.mu.Lock()
	defer l.mu.Unlock()

	return m.ReportOutput{
		m.OutputVisible: {Output: l.visible.String(), OutputFormat: m.FormatText},
		m.OutputHidden:  {Output: l.hidden.String(), OutputFormat: m.FormatText},
	}
}
