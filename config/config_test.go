package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/tablerw/errors"
)

func validConfig() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := validConfig()
	if cfg.Name != "tablerw" || cfg.Environment != "development" {
		t.Errorf("got name %q environment %q", cfg.Name, cfg.Environment)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("got logging level %q, want info", cfg.Logging.Level)
	}
	if cfg.Export.StartRow != 1 || cfg.Export.StartCol != 1 {
		t.Errorf("got start (%d, %d), want (1, 1)", cfg.Export.StartRow, cfg.Export.StartCol)
	}
	if cfg.Telemetry.Interval != 15*time.Second || cfg.Telemetry.SampleRate != 1 {
		t.Errorf("unexpected telemetry defaults %+v", cfg.Telemetry)
	}
}

func TestConfigApplyDefaultsKeepsValues(t *testing.T) {
	cfg := Config{Name: "report", Export: Export{Sheet: "Q1", StartRow: 3}}
	cfg.ApplyDefaults()
	if cfg.Name != "report" || cfg.Export.Sheet != "Q1" || cfg.Export.StartRow != 3 {
		t.Errorf("defaults overwrote explicit values: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.ErrorCode
		errMsg string
	}{
		{"valid", func(*Config) {}, "", ""},
		{"invalid environment", func(c *Config) { c.Environment = "qa" }, errors.ErrCodeInvalidInput, "environment: must be one of"},
		{"negative rows", func(c *Config) { c.Export.Rows = -1 }, errors.ErrCodeInvalidInput, "export.rows: must be at least 0"},
		{"zero start row", func(c *Config) { c.Export.StartRow = 0 }, errors.ErrCodeInvalidInput, "export.start_row: must be at least 1"},
		{"missing sheet", func(c *Config) { c.Export.Sheet = "" }, errors.ErrCodeInvalidInput, "export.sheet: is required"},
		{"sample rate above one", func(c *Config) { c.Telemetry.SampleRate = 2 }, errors.ErrCodeInvalidInput, "telemetry.sample_rate: must be at most 1"},
		{"bad endpoint", func(c *Config) { c.Telemetry.Endpoint = "nope" }, errors.ErrCodeInvalidInput, "telemetry.endpoint"},
		{"enabled without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Endpoint = ""
		}, errors.ErrCodeInvalidConfig, "telemetry.endpoint"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, errors.ErrCodeInvalidConfig, "logging.level"},
		{"s3 without bucket", func(c *Config) { c.Storage.Provider = "s3" }, errors.ErrCodeInvalidConfig, "storage.bucket"},
		{"disabled database ignores log level", func(c *Config) { c.Database.LogLevel = "loud" }, "", ""},
		{"database log level", func(c *Config) {
			c.Database.Enabled = true
			c.Database.LogLevel = "loud"
		}, errors.ErrCodeInvalidConfig, "database.log_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, tc.code) {
				t.Fatalf("got %v, want %s", err, tc.code)
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
			}
		})
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: stock-report
environment: staging
export:
  output: out.xlsx
  sheet: Stock
  rows: 25
  start_row: 2
telemetry:
  interval: 5s
storage:
  provider: s3
  bucket: reports
  endpoint: http://localhost:9000
database:
  enabled: true
  dsn: reports.db
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load("tablerw", WithConfigFile(configPath), WithFileSystem(&RealFileSystem{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "stock-report" || cfg.Environment != "staging" {
		t.Errorf("got name %q environment %q", cfg.Name, cfg.Environment)
	}
	if cfg.Export.Rows != 25 || cfg.Export.StartRow != 2 || cfg.Export.StartCol != 1 {
		t.Errorf("unexpected export section %+v", cfg.Export)
	}
	if cfg.Telemetry.Interval != 5*time.Second {
		t.Errorf("got interval %v, want 5s", cfg.Telemetry.Interval)
	}
	if cfg.Storage.Provider != "s3" || cfg.Storage.Bucket != "reports" || cfg.Storage.Region != "us-east-1" {
		t.Errorf("unexpected storage section %+v", cfg.Storage)
	}
	if !cfg.Database.Enabled || cfg.Database.DSN != "reports.db" || cfg.Database.MaxOpenConns != 1 {
		t.Errorf("unexpected database section %+v", cfg.Database)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("export:\n  rows: 25\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("EXPORT_ROWS", "7")
	t.Setenv("EXPORT_SHEET", "Inventory")

	cfg, err := Load("tablerw", WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Export.Rows != 7 || cfg.Export.Sheet != "Inventory" {
		t.Errorf("env did not override file: %+v", cfg.Export)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("EXPORT_START_COL", "-2")
	_, err := Load("tablerw", WithConfigFile("/nonexistent/path.yml"))
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("got %v, want INVALID_INPUT", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg Config
	err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigDecodeError(t *testing.T) {
	t.Setenv("EXPORT_ROWS", "many")
	var cfg Config
	err := LoadConfig("tablerw", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("got %v, want INVALID_CONFIG", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/tablerw/config.yml": true,
		"./config/.env":            true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("tablerw", LoaderConfig{})
	if files.ConfigFile != "./cmd/tablerw/config.yml" {
		t.Errorf("expected config file at ./cmd/tablerw/config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./config/.env" {
		t.Errorf("expected env file at ./config/.env, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("tablerw", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if files.ConfigFile != "a.yml" || files.EnvFile != "b.env" {
		t.Errorf("explicit paths not kept: %+v", files)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	fs := &mockFS{
		files: map[string]bool{"custom.env": true},
		env:   map[string]string{"EXPORT_OUTPUT": "from-env.xlsx"},
		t:     t,
	}
	var cfg Config
	if err := LoadConfig("tablerw", &cfg, WithFileSystem(fs), WithEnvFile("custom.env"), WithConfigFile("none.yml")); err != nil {
		t.Fatal(err)
	}
	if cfg.Export.Output != "from-env.xlsx" {
		t.Errorf("got output %q, want from-env.xlsx", cfg.Export.Output)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("EXPORT_START_ROW")
	for _, want := range []string{"export_start_row", "export.start.row", "export.start_row"} {
		found := false
		for _, v := range got {
			if v == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing variant %q in %v", want, got)
		}
	}
}

type mockFS struct {
	files map[string]bool
	env   map[string]string
	t     *testing.T
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) Getwd() (string, error)  { return "/mock", nil }

func (m *mockFS) LoadEnv(path string) error {
	for k, v := range m.env {
		m.t.Setenv(k, v)
	}
	return nil
}

func TestWithFileSystemOption(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
}

func TestWithConfigFileOption(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/config.yml")(&lc)
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
}

func TestWithEnvFileOption(t *testing.T) {
	var lc LoaderConfig
	WithEnvFile("/path/to/.env")(&lc)
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}
