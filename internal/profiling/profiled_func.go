package profiling

import (
	"fmt"
	"sync"
	"time"
)

type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeError Outcome = "error"
	OutcomePanic Outcome = "panic"
)

// Summary is a point-in-time copy of a ProfiledFunc's statistics, in milliseconds.
type Summary struct {
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Failures   int64   `json:"failures"`
	HasSamples bool    `json:"hasSamples"`
	MinMs      float64 `json:"minMs"`
	MaxMs      float64 `json:"maxMs"`
	MeanMs     float64 `json:"meanMs"`
	Report     string  `json:"report"`
}

type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// ProfiledFunc wraps a target function and times every invocation into an Accumulator.
//
// Every call is recorded, including calls that return an error and calls that panic: the elapsed
// time is observed in a deferred function before the error is returned or the panic continues.
// Failed calls are additionally counted by Failures. Only the synchronous part of the call is
// measured; goroutines started by the target are not awaited.
//
// A ProfiledFunc is safe for concurrent use. Invocations themselves run unlocked; only the
// bookkeeping after each call is serialized.
type ProfiledFunc[A, R any] struct {
	name   string
	target func(A) (R, error)
	clock  func() time.Time

	mu       sync.Mutex
	stats    Accumulator
	failures int64
}

// Wrap creates a ProfiledFunc named name around target.
func Wrap[A, R any](name string, target func(A) (R, error), opts ...Option) *ProfiledFunc[A, R] {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &ProfiledFunc[A, R]{
		name:   name,
		target: target,
		clock:  o.clock,
	}
}

// Invoke calls the target with arg and returns exactly what it returns.
func (p *ProfiledFunc[A, R]) Invoke(arg A) (result R, err error) {
	start := p.clock()
	outcome := OutcomePanic
	defer func() {
		p.record(p.clock().Sub(start), outcome)
	}()

	result, err = p.target(arg)
	if err != nil {
		outcome = OutcomeError
	} else {
		outcome = OutcomeOK
	}
	return result, err
}

func (p *ProfiledFunc[A, R]) record(elapsed time.Duration, outcome Outcome) {
	if elapsed < 0 {
		elapsed = 0
	}
	metricProfiledCallDuration.WithLabelValues(p.name, string(outcome)).Observe(elapsed.Seconds())

	p.mu.Lock()
	defer p.mu.Unlock()
	// elapsed is finite and non-negative here, so Observe cannot fail
	_ = p.stats.Observe(float64(elapsed) / float64(time.Millisecond))
	if outcome != OutcomeOK {
		p.failures++
	}
}

func (p *ProfiledFunc[A, R]) Name() string {
	return p.name
}

func (p *ProfiledFunc[A, R]) Count() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats.Count()
}

// Failures counts invocations that returned an error or panicked.
func (p *ProfiledFunc[A, R]) Failures() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}

// Min returns the fastest call in milliseconds.
func (p *ProfiledFunc[A, R]) Min() (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats.Min()
}

// Max returns the slowest call in milliseconds.
func (p *ProfiledFunc[A, R]) Max() (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats.Max()
}

// Mean returns the average call duration in milliseconds.
func (p *ProfiledFunc[A, R]) Mean() (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats.Mean()
}

// Reset discards all samples and the failure count.
func (p *ProfiledFunc[A, R]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats.Reset()
	p.failures = 0
}

// Summary returns a consistent snapshot of all statistics.
func (p *ProfiledFunc[A, R]) Summary() Summary {
	p.mu.Lock()
	defer p.mu.Unlock()

	summary := Summary{
		Name:     p.name,
		Count:    p.stats.Count(),
		Failures: p.failures,
	}
	if summary.Count > 0 {
		summary.HasSamples = true
		summary.MinMs, _ = p.stats.Min()
		summary.MaxMs, _ = p.stats.Max()
		summary.MeanMs, _ = p.stats.Mean()
	}
	summary.Report = formatReport(summary)
	return summary
}

// Report renders a one-line, human-readable summary. It never fails, even without samples.
func (p *ProfiledFunc[A, R]) Report() string {
	return p.Summary().Report
}

func formatReport(s Summary) string {
	if !s.HasSamples {
		return fmt.Sprintf("%s: no samples", s.Name)
	}
	return fmt.Sprintf("%s: count=%d min=%.3fms max=%.3fms mean=%.3fms failures=%d (failed calls included)",
		s.Name, s.Count, s.MinMs, s.MaxMs, s.MeanMs, s.Failures)
}
