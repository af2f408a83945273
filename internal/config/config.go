package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output modes for generated records.
const (
	OutputDump = "dump"
	OutputRaw  = "raw"
)

// Generator holds all configuration for the record generator.
type Generator struct {
	// Template supplies default field values; CLI flags override them.
	Template Template `yaml:"template"`

	// Output is "dump" (hexdump) or "raw" (100 bytes per record).
	Output string `yaml:"output"`

	// Workers bounds concurrent record builds in batch mode.
	Workers int `yaml:"workers"`

	// Store persists generated records in Database.
	Store    bool           `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGenerator returns Generator config with sensible defaults.
func DefaultGenerator() Generator {
	return Generator{
		Template: DefaultTemplate(),
		Output:   OutputDump,
		Workers:  4,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "gen3pkm",
			Password: "gen3pkm",
			DBName:   "gen3pkm",
			SSLMode:  "disable",
		},
	}
}

// Validate checks structural settings. Field value ranges are not checked.
func (g Generator) Validate() error {
	var errs []error
	if g.Output != OutputDump && g.Output != OutputRaw {
		errs = append(errs, fmt.Errorf("output must be %q or %q, got %q", OutputDump, OutputRaw, g.Output))
	}
	if g.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", g.Workers))
	}
	if g.Store && g.Database.Port <= 0 {
		errs = append(errs, fmt.Errorf("database port must be > 0, got %d", g.Database.Port))
	}
	if err := g.Template.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadGenerator loads generator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGenerator(path string) (Generator, error) {
	cfg := DefaultGenerator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
