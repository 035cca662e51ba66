package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// ReportStore persists grading reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.GradingReport) error
	LoadReport(ctx context.Context, path m.Path) (m.GradingReport, error)
}

// JSONReportStore writes reports as indented JSON documents.
type JSONReportStore struct{}

// NewReportStore constructs a JSONReportStore.
func NewReportStore() *JSONReportStore {
	return &JSONReportStore{}
}

// SaveReport writes report to path, creating parent directories as needed.
func (s *JSONReportStore) SaveReport(_ context.Context, path m.Path, report m.GradingReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *JSONReportStore) LoadReport(_ context.Context, path m.Path) (m.GradingReport, error) {
	// #nosec G304 - report path is provided by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.GradingReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.GradingReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.GradingReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
