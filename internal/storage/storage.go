package storage

import (
	"time"

	"fixturelint/internal/config"
	"fixturelint/internal/domain"
	"fixturelint/internal/lint"
)

// Storage persists and loads lint reports (e.g. for the report viewer).
type Storage interface {
	Save(result *lint.Result, opts lint.Options) error
	Load() (*domain.ReportOutput, error)
	// SaveOutput writes the full output (e.g. after marking violations resolved).
	SaveOutput(output *domain.ReportOutput) error
}

// JSONStorage stores reports in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
	now func() time.Time
}

// NewJSONStorage returns a Storage that reads/writes the config's report path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg, now: time.Now}
}
