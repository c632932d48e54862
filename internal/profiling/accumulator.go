package profiling

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoSamples is returned by Min, Max and Mean before the first observation.
	ErrNoSamples = errors.New("no samples collected")

	// ErrInvalidSample rejects negative, NaN and infinite observations.
	ErrInvalidSample = errors.New("invalid sample")
)

// Accumulator keeps running min, max, count and mean of a non-negative sample stream.
//
// State is four numbers regardless of how many samples are observed. The mean is updated
// incrementally:
//
//	mean' = mean + (value - mean) / count'
//
// which avoids keeping a running sum that could lose precision over long streams.
//
// Accumulator is not safe for concurrent use; ProfiledFunc guards its own.
type Accumulator struct {
	count int64
	min   float64
	max   float64
	mean  float64
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Observe records one sample.
func (a *Accumulator) Observe(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSample, value)
	}

	a.count++
	if a.count == 1 || value < a.min {
		a.min = value
	}
	if a.count == 1 || value > a.max {
		a.max = value
	}
	a.mean += (value - a.mean) / float64(a.count)
	return nil
}

func (a *Accumulator) Count() int64 {
	return a.count
}

func (a *Accumulator) Min() (float64, error) {
	if a.count == 0 {
		return 0, ErrNoSamples
	}
	return a.min, nil
}

func (a *Accumulator) Max() (float64, error) {
	if a.count == 0 {
		return 0, ErrNoSamples
	}
	return a.max, nil
}

func (a *Accumulator) Mean() (float64, error) {
	if a.count == 0 {
		return 0, ErrNoSamples
	}
	return a.mean, nil
}

// Reset zeroes all state at once.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
