package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dotpipe/internal/domain"
)

// ErrNoRun is returned by Load when no run has been stored yet.
var ErrNoRun = errors.New("no stored test run")

// Save writes the report to the configured JSON output file.
func (s *JSONStorage) Save(report *domain.RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last stored report.
func (s *JSONStorage) Load() (*domain.RunReport, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoRun
		}
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var report domain.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &report, nil
}
