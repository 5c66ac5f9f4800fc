package config

import (
	"time"

	"github.com/kbukum/tablerw/database"
	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/logger"
	"github.com/kbukum/tablerw/storage"
	"github.com/kbukum/tablerw/validation"
)

// Config is the configuration of the tablerw command.
type Config struct {
	Name        string          `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string          `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging"`
	Telemetry   Telemetry       `yaml:"telemetry" mapstructure:"telemetry"`
	Export      Export          `yaml:"export" mapstructure:"export"`
	Storage     storage.Config  `yaml:"storage" mapstructure:"storage"`
	Database    database.Config `yaml:"database" mapstructure:"database"`
}

// Telemetry configures the OTLP metric and trace exporters.
type Telemetry struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// Export describes the workbook the command writes and reads back. Output is
// the object path in the configured storage.
type Export struct {
	Output   string `yaml:"output" mapstructure:"output" validate:"required"`
	Sheet    string `yaml:"sheet" mapstructure:"sheet" validate:"required"`
	Rows     int    `yaml:"rows" mapstructure:"rows" validate:"min=0"`
	StartRow int    `yaml:"start_row" mapstructure:"start_row" validate:"min=1"`
	StartCol int    `yaml:"start_col" mapstructure:"start_col" validate:"min=1"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "tablerw"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()

	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.Interval == 0 {
		c.Telemetry.Interval = 15 * time.Second
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}

	if c.Export.Output == "" {
		c.Export.Output = "stock.xlsx"
	}
	if c.Export.Sheet == "" {
		c.Export.Sheet = "Stock"
	}
	if c.Export.Rows == 0 {
		c.Export.Rows = 100
	}
	if c.Export.StartRow == 0 {
		c.Export.StartRow = 1
	}
	if c.Export.StartCol == 0 {
		c.Export.StartCol = 1
	}
	c.Storage.ApplyDefaults()
	c.Database.ApplyDefaults()
}

// Validate checks struct tags and then each section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return errors.InvalidConfig("telemetry.endpoint", "is required when telemetry is enabled")
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// Load reads the configuration of serviceName, applies defaults and validates
// the result.
func Load(serviceName string, opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
