package resilience

import (
	"context"
	stderrors "errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/logger"
)

// Policy configures retries.
type Policy struct {
	// MaxAttempts counts the first attempt.
	MaxAttempts    int           `yaml:"max_attempts" mapstructure:"max_attempts" validate:"min=0"`
	InitialBackoff time.Duration `yaml:"initial_backoff" mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff" mapstructure:"max_backoff"`
	BackoffFactor  float64       `yaml:"backoff_factor" mapstructure:"backoff_factor"`
	// Jitter is the fraction of the backoff randomly added or removed, 0 to 1.
	Jitter float64 `yaml:"jitter" mapstructure:"jitter" validate:"gte=0,lte=1"`

	// RetryIf reports whether err is worth another attempt. Nil means
	// Retryable.
	RetryIf func(error) bool `yaml:"-" mapstructure:"-"`
}

// DefaultPolicy returns three attempts starting at 100ms.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0.1,
	}
}

// ApplyDefaults fills unset fields from DefaultPolicy.
func (p *Policy) ApplyDefaults() {
	d := DefaultPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = d.MaxAttempts
	}
	if p.InitialBackoff <= 0 {
		p.InitialBackoff = d.InitialBackoff
	}
	if p.MaxBackoff <= 0 {
		p.MaxBackoff = d.MaxBackoff
	}
	if p.BackoffFactor <= 0 {
		p.BackoffFactor = d.BackoffFactor
	}
}

// Retryable retries everything except cancellation and errors that would
// fail the same way again: rejected configuration or input, and missing
// registrations.
func Retryable(err error) bool {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Code {
		case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidInput, errors.ErrCodeNotRegistered:
			return false
		}
	}
	return true
}

// Do calls fn until it succeeds, returns an error RetryIf rejects, or the
// attempts run out. The last error is returned. op names the operation in
// retry logs.
func Do(ctx context.Context, p Policy, op string, fn func(context.Context) error) error {
	p.ApplyDefaults()
	retryIf := p.RetryIf
	if retryIf == nil {
		retryIf = Retryable
	}

	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		if !retryIf(err) || attempt == p.MaxAttempts {
			return err
		}

		wait := backoff(attempt, p)
		logger.WithContext(ctx).Warn("retrying", map[string]interface{}{
			logger.FieldOperation: op,
			logger.FieldError:     err.Error(),
			"attempt":             attempt,
			"backoff":             wait.String(),
		})

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}

// backoff is InitialBackoff * BackoffFactor^(attempt-1), jittered and capped.
func backoff(attempt int, p Policy) time.Duration {
	d := float64(p.InitialBackoff) * math.Pow(p.BackoffFactor, float64(attempt-1))
	if p.Jitter > 0 {
		d += (rand.Float64()*2 - 1) * d * p.Jitter
	}
	if d > float64(p.MaxBackoff) {
		d = float64(p.MaxBackoff)
	}
	if d < 0 {
		d = float64(p.InitialBackoff)
	}
	return time.Duration(d)
}
