package storage

import (
	"dotpipe/internal/config"
	"dotpipe/internal/domain"
)

// Storage persists and loads the last per-project test run (e.g. for the failures viewer).
type Storage interface {
	Save(report *domain.RunReport) error
	Load() (*domain.RunReport, error)
}

// JSONStorage stores the run in a JSON file under the configured results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Path returns the file the run is stored in.
func (s *JSONStorage) Path() string {
	return s.cfg.GetResultsPath()
}
