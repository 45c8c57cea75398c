package extract

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/cohort-intel/internal/resilience"
)

// defaultTimeout bounds one extraction attempt end to end.
const defaultTimeout = 25 * time.Second

// Task runs extraction requests against a provider with a per-call deadline,
// provider-side rate limiting, and bounded retry on transient failures.
//
// Task never fails upward: every failure mode (provider error, empty data,
// deadline) is absorbed into an empty result and logged, which lets callers
// treat all sub-tasks uniformly.
type Task struct {
	provider Provider
	limiter  *rate.Limiter
	timeout  time.Duration
	retry    resilience.RetryConfig
}

// TaskOption configures a Task.
type TaskOption func(*Task)

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) TaskOption {
	return func(t *Task) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithRateLimit caps outbound provider calls at rps requests per second.
func WithRateLimit(rps float64) TaskOption {
	return func(t *Task) {
		if rps > 0 {
			t.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithRetry overrides the retry configuration for transient provider errors.
func WithRetry(cfg resilience.RetryConfig) TaskOption {
	return func(t *Task) {
		t.retry = cfg
	}
}

// NewTask creates an extraction task bound to a provider.
func NewTask(provider Provider, opts ...TaskOption) *Task {
	t := &Task{
		provider: provider,
		timeout:  defaultTimeout,
		retry:    resilience.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run performs one extraction. It always returns a non-nil map: the
// schema-shaped data on success, empty on any failure. The label identifies
// the research angle in diagnostic logs.
func (t *Task) Run(ctx context.Context, label string, req Request) map[string]any {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			zap.L().Warn("extract: rate limit wait aborted",
				zap.String("task", label),
				zap.String("target", req.Target),
				zap.Error(err),
			)
			return map[string]any{}
		}
	}

	data, err := resilience.Do(ctx, t.retry, func(ctx context.Context) (map[string]any, error) {
		return t.provider.Extract(ctx, req)
	})
	if err != nil {
		zap.L().Warn("extract: task failed",
			zap.String("task", label),
			zap.String("provider", t.provider.Name()),
			zap.String("target", req.Target),
			zap.Error(err),
		)
		return map[string]any{}
	}
	if data == nil {
		zap.L().Warn("extract: provider returned no data",
			zap.String("task", label),
			zap.String("provider", t.provider.Name()),
			zap.String("target", req.Target),
		)
		return map[string]any{}
	}

	return data
}
