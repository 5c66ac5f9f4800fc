package storage

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/tablerw/resilience"
)

// flaky fails the first n calls of every operation.
type flaky struct {
	failures int
	calls    int
	uploaded []string
}

func (f *flaky) fail() error {
	f.calls++
	if f.calls <= f.failures {
		return stderrors.New("connection reset")
	}
	return nil
}

func (f *flaky) Upload(_ context.Context, _ string, r io.Reader) error {
	data, _ := io.ReadAll(r)
	if err := f.fail(); err != nil {
		return err
	}
	f.uploaded = append(f.uploaded, string(data))
	return nil
}

func (f *flaky) Download(context.Context, string) (io.ReadCloser, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader("body")), nil
}

func (f *flaky) Delete(context.Context, string) error { return f.fail() }

func (f *flaky) Exists(context.Context, string) (bool, error) {
	if err := f.fail(); err != nil {
		return false, err
	}
	return true, nil
}

func (f *flaky) URL(context.Context, string) (string, error) { return "mem://x", nil }

func policy() resilience.Policy {
	return resilience.Policy{MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
}

func TestWithRetryUploadRewinds(t *testing.T) {
	f := &flaky{failures: 2}
	s := WithRetry(f, policy())
	if err := s.Upload(context.Background(), "k", bytes.NewReader([]byte("workbook"))); err != nil {
		t.Fatal(err)
	}
	if len(f.uploaded) != 1 || f.uploaded[0] != "workbook" {
		t.Errorf("got %q, want one full upload", f.uploaded)
	}
}

func TestWithRetryUploadUnseekable(t *testing.T) {
	f := &flaky{failures: 1}
	s := WithRetry(f, policy())
	if err := s.Upload(context.Background(), "k", io.MultiReader(strings.NewReader("x"))); err == nil {
		t.Error("expected the single attempt to fail")
	}
	if f.calls != 1 {
		t.Errorf("expected 1 call, got %d", f.calls)
	}
}

func TestWithRetryDownloadExistsDelete(t *testing.T) {
	ctx := context.Background()

	f := &flaky{failures: 2}
	rc, err := WithRetry(f, policy()).Download(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	rc.Close()

	f = &flaky{failures: 1}
	if ok, err := WithRetry(f, policy()).Exists(ctx, "k"); err != nil || !ok {
		t.Errorf("got %v, %v", ok, err)
	}

	f = &flaky{failures: 5}
	if err := WithRetry(f, policy()).Delete(ctx, "k"); err == nil {
		t.Error("expected delete to fail after 3 attempts")
	}
	if f.calls != 3 {
		t.Errorf("expected 3 calls, got %d", f.calls)
	}
}

func TestWithRetryURL(t *testing.T) {
	u, _ := WithRetry(&flaky{}, policy()).URL(context.Background(), "k")
	if u != "mem://x" {
		t.Errorf("got %q", u)
	}
}
