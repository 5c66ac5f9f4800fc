package storage

import (
	"github.com/kbukum/tablerw/resilience"
	"github.com/kbukum/tablerw/validation"
)

// Provider names.
const (
	ProviderLocal = "local"
	ProviderS3    = "s3"
)

// Defaults.
const (
	DefaultProvider = ProviderLocal
	DefaultBasePath = "."
	DefaultRegion   = "us-east-1"
)

// Config selects and configures a backend. Fields that do not apply to the
// selected provider are ignored.
type Config struct {
	Provider string `yaml:"provider" mapstructure:"provider"`

	// BasePath is the root directory of the local provider.
	BasePath string `yaml:"base_path" mapstructure:"base_path"`

	Bucket string `yaml:"bucket" mapstructure:"bucket"`
	Region string `yaml:"region" mapstructure:"region"`
	// Endpoint overrides the S3 endpoint, e.g. "http://localhost:9000" for MinIO.
	Endpoint       string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKey      string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey      string `yaml:"secret_key" mapstructure:"secret_key"`
	ForcePathStyle bool   `yaml:"force_path_style" mapstructure:"force_path_style"`

	Retry resilience.Policy `yaml:"retry" mapstructure:"retry"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	c.Retry.ApplyDefaults()
}

// Validate checks the fields the selected provider needs.
func (c *Config) Validate() error {
	v := validation.New().OneOf("storage.provider", c.Provider, []string{ProviderLocal, ProviderS3})
	switch c.Provider {
	case ProviderLocal:
		v.Required("storage.base_path", c.BasePath)
	case ProviderS3:
		v.Required("storage.bucket", c.Bucket).
			Required("storage.region", c.Region).
			Custom((c.AccessKey == "") == (c.SecretKey == ""), "storage.secret_key", "access_key and secret_key must be set together")
	case "":
		v.AddError("storage.provider", "is required")
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
