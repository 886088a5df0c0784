package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/efreport/efreport/internal/categories"
	"github.com/efreport/efreport/internal/config"
	"github.com/efreport/efreport/internal/dataset"
	"github.com/efreport/efreport/internal/log"
	"github.com/efreport/efreport/internal/model"
)

// project is a loaded report project: its config and directory.
type project struct {
	dir    string
	cfg    *config.Config
	logger zerolog.Logger
}

func loadProject(opts *rootOptions, stderr io.Writer) (*project, error) {
	cfgPath, err := filepath.Abs(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(cfgPath)
	dotenv, err := config.ReadDotEnv(filepath.Join(dir, ".env"))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(config.EnvLookup(dotenv))
	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}

	logger, err := log.New(stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("config", cfgPath).Msg("config loaded")

	return &project{dir: dir, cfg: cfg, logger: logger}, nil
}

func (p *project) datasetPath() string {
	if filepath.IsAbs(p.cfg.Report.Dataset) {
		return p.cfg.Report.Dataset
	}
	return filepath.Join(p.dir, p.cfg.Report.Dataset)
}

// loadTransactions reads the dataset and warns about categories outside the
// statutory catalog. Unknown categories are still aggregated.
func (p *project) loadTransactions() ([]model.Transaction, error) {
	l := log.Component(p.logger, "dataset")
	path := p.datasetPath()

	l.Debug().Str(log.FieldDataset, path).Msg("loading dataset")
	txns, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	l.Debug().Int(log.FieldTransactions, len(txns)).Msg("dataset loaded")

	names := make([]string, len(txns))
	for i, t := range txns {
		names[i] = t.Category
	}
	for _, name := range categories.Default().Unknown(names) {
		l.Warn().Str(log.FieldCategory, name).Msg("category not in catalog")
	}
	return txns, nil
}
