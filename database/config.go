package database

import (
	"time"

	"github.com/kbukum/tablerw/resilience"
	"github.com/kbukum/tablerw/validation"
)

// Config holds the database connection settings.
type Config struct {
	// Enabled turns on mirroring reports into the database.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// DSN is the SQLite data source, a file path or a file: URI.
	DSN string `yaml:"dsn" mapstructure:"dsn"`

	// MaxOpenConns defaults to 1; SQLite serializes writers anyway.
	MaxOpenConns int `yaml:"max_open_conns" mapstructure:"max_open_conns"`

	// LogLevel is the GORM log level: silent, error, warn or info.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// SlowQueryThreshold marks queries logged as slow.
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" mapstructure:"slow_query_threshold"`

	// Connect is the retry policy for opening the database.
	Connect resilience.Policy `yaml:"connect" mapstructure:"connect"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.DSN == "" {
		c.DSN = "tablerw.db"
	}
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.SlowQueryThreshold <= 0 {
		c.SlowQueryThreshold = 200 * time.Millisecond
	}
	c.Connect.ApplyDefaults()
}

// Validate checks the settings. A disabled database is always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	v := validation.New().
		Required("database.dsn", c.DSN).
		Min("database.max_open_conns", c.MaxOpenConns, 1).
		OneOf("database.log_level", c.LogLevel, []string{"silent", "error", "warn", "info"})
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
