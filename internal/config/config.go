package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/efreport/efreport/internal/report"
)

// FileName is the default config file name in a report project.
const FileName = "efreport.yaml"

// Output formats accepted by the report command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Environment variables that override file values.
const (
	EnvDataset  = "EFREPORT_DATASET"
	EnvFormat   = "EFREPORT_FORMAT"
	EnvLogLevel = "EFREPORT_LOG_LEVEL"
)

var (
	validFormats   = []string{FormatText, FormatJSON, FormatCSV}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Config represents the top-level efreport.yaml configuration.
type Config struct {
	Report           ReportConfig `yaml:"report"`
	IncomeCategories []string     `yaml:"income_categories"`
	Output           OutputConfig `yaml:"output"`
	Log              LogConfig    `yaml:"log"`
}

// ReportConfig names the report and its dataset.
type ReportConfig struct {
	Title   string `yaml:"title"`
	Dataset string `yaml:"dataset"` // relative paths resolve against the config file
}

// OutputConfig selects the default rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads an efreport.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(title string) *Config {
	if title == "" {
		title = report.DefaultTitle
	}
	return &Config{
		Report: ReportConfig{
			Title:   title,
			Dataset: "data/transactions.json",
		},
		IncomeCategories: report.DefaultClassifier().IncomeCategories(),
		Output: OutputConfig{
			Format: FormatText,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate returns every problem found in the config, joined.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Report.Dataset) == "" {
		errs = append(errs, errors.New("report.dataset cannot be empty"))
	}
	if !slices.Contains(validFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("invalid output.format %q: must be one of %v", c.Output.Format, validFormats))
	}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("invalid log.level %q: must be one of %v", c.Log.Level, validLogLevels))
	}
	for i, name := range c.IncomeCategories {
		if name == "" {
			errs = append(errs, fmt.Errorf("income_categories[%d] is empty", i))
		}
	}
	return errors.Join(errs...)
}

// Classifier returns the income/expense classifier for this config. An
// absent income_categories list means the statutory default.
func (c *Config) Classifier() report.Classifier {
	if len(c.IncomeCategories) == 0 {
		return report.DefaultClassifier()
	}
	return report.NewClassifier(c.IncomeCategories...)
}

// ReadDotEnv reads KEY=VALUE pairs from a .env file. A missing file yields
// an empty map.
func ReadDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}

// ApplyEnv overrides file values with the EFREPORT_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataset); ok && v != "" {
		c.Report.Dataset = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// EnvLookup layers the process environment over the values of a .env file.
func EnvLookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}
