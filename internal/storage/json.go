package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fixturelint/internal/domain"
	"fixturelint/internal/lint"
)

// Save writes the lint result to the configured JSON report file.
func (s *JSONStorage) Save(result *lint.Result, opts lint.Options) error {
	details := result.Report.Failures()

	output := domain.ReportOutput{
		Meta: domain.ReportMeta{
			InputDir:         opts.Input.Path,
			ExpectedDir:      opts.Expected.Path,
			InputFixtures:    len(result.Inputs),
			ExpectedFixtures: len(result.Outputs),
			Violations:       len(details),
			Duration:         result.Duration.String(),
			DurationSeconds:  result.Duration.Seconds(),
			Timestamp:        s.now().Format(time.RFC3339),
		},
		Details: details,
	}
	if output.Details == nil {
		output.Details = []domain.Failure{}
	}

	return s.SaveOutput(&output)
}

// Load reads the last saved report.
func (s *JSONStorage) Load() (*domain.ReportOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var output domain.ReportOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.ReportOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
