package storage_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/storage"
	_ "github.com/kbukum/tablerw/storage/local"
	_ "github.com/kbukum/tablerw/storage/s3"
)

func TestConfigDefaults(t *testing.T) {
	var cfg storage.Config
	cfg.ApplyDefaults()
	if cfg.Provider != storage.ProviderLocal || cfg.BasePath != "." || cfg.Region != "us-east-1" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   storage.Config
		field string
	}{
		{"unknown provider", storage.Config{Provider: "ftp"}, "storage.provider"},
		{"empty provider", storage.Config{}, "storage.provider"},
		{"s3 without bucket", storage.Config{Provider: "s3", Region: "eu-west-1"}, "storage.bucket"},
		{"s3 half credentials", storage.Config{Provider: "s3", Bucket: "b", Region: "r", AccessKey: "a"}, "storage.secret_key"},
		{"local without path", storage.Config{Provider: "local"}, "storage.base_path"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			appErr, ok := errors.AsAppError(err)
			if !ok || appErr.Code != errors.ErrCodeInvalidConfig {
				t.Fatalf("got %v, want INVALID_CONFIG", err)
			}
			if !bytes.Contains([]byte(appErr.Message), []byte(tc.field)) {
				t.Errorf("message %q does not name %s", appErr.Message, tc.field)
			}
		})
	}
}

func TestProviders(t *testing.T) {
	got := storage.Providers()
	if len(got) != 2 || got[0] != "local" || got[1] != "s3" {
		t.Errorf("got %v, want [local s3]", got)
	}
}

func TestNewLocal(t *testing.T) {
	ctx := context.Background()
	store, err := storage.New(ctx, storage.Config{Provider: "local", BasePath: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Upload(ctx, "reports/stock.xlsx", bytes.NewReader([]byte("data"))); err != nil {
		t.Fatal(err)
	}
	rc, err := store.Download(ctx, "reports/stock.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "data" {
		t.Errorf("got %q, want data", got)
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := storage.New(context.Background(), storage.Config{Provider: "ftp"})
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("got %v, want INVALID_CONFIG", err)
	}
}
