package profiling

import (
	"math"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_Empty(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()

	assert.Equal(t, int64(0), acc.Count())

	_, err := acc.Min()
	assert.ErrorIs(t, err, ErrNoSamples)
	_, err = acc.Max()
	assert.ErrorIs(t, err, ErrNoSamples)
	_, err = acc.Mean()
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestAccumulator_SingleSample(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	require.NoError(t, acc.Observe(0))

	assertStats(t, acc, 1, 0, 0, 0)
}

func TestAccumulator_MatchesBatchStatistics(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	tests := []struct {
		name   string
		values []float64
	}{
		{name: "ascending", values: []float64{1, 2, 3, 4, 5}},
		{name: "descending", values: []float64{5, 4, 3, 2, 1}},
		{name: "repeated", values: []float64{7, 7, 7}},
		{name: "mixed magnitudes", values: []float64{0.001, 1e6, 42.5, 0, 3}},
		{name: "random", values: randomValues(rng, 10000)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acc := NewAccumulator()
			for _, v := range tt.values {
				require.NoError(t, acc.Observe(v))
			}

			wantMin, wantMax, sum := tt.values[0], tt.values[0], 0.0
			for _, v := range tt.values {
				wantMin = math.Min(wantMin, v)
				wantMax = math.Max(wantMax, v)
				sum += v
			}
			wantMean := sum / float64(len(tt.values))

			assertStats(t, acc, int64(len(tt.values)), wantMin, wantMax, wantMean)
		})
	}
}

func TestAccumulator_InvalidSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
	}{
		{name: "negative", value: -1},
		{name: "NaN", value: math.NaN()},
		{name: "positive infinity", value: math.Inf(1)},
		{name: "negative infinity", value: math.Inf(-1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acc := NewAccumulator()
			require.NoError(t, acc.Observe(10))

			err := acc.Observe(tt.value)
			assert.ErrorIs(t, err, ErrInvalidSample)

			// rejected samples leave the state untouched
			assertStats(t, acc, 1, 10, 10, 10)
		})
	}
}

func TestAccumulator_NoSamplesOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	for i := 0; i < 5; i++ {
		_, errBefore := acc.Mean()
		if acc.Count() == 0 {
			assert.ErrorIs(t, errBefore, ErrNoSamples)
		} else {
			assert.NoError(t, errBefore)
		}
		require.NoError(t, acc.Observe(float64(i)))
	}
}

func TestAccumulator_Reset(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	require.NoError(t, acc.Observe(3))
	require.NoError(t, acc.Observe(9))

	acc.Reset()

	assert.Equal(t, int64(0), acc.Count())
	_, err := acc.Min()
	assert.ErrorIs(t, err, ErrNoSamples)

	require.NoError(t, acc.Observe(4))
	assertStats(t, acc, 1, 4, 4, 4)
}

func TestAccumulator_ConstantSize(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	before := unsafe.Sizeof(*acc)
	for i := 0; i < 100000; i++ {
		require.NoError(t, acc.Observe(float64(i%97)))
	}

	assert.Equal(t, before, unsafe.Sizeof(*acc))
	assert.Equal(t, uintptr(32), before, "count plus three float64 fields")
}

func assertStats(t *testing.T, acc *Accumulator, count int64, wantMin, wantMax, wantMean float64) {
	t.Helper()

	assert.Equal(t, count, acc.Count())

	gotMin, err := acc.Min()
	require.NoError(t, err)
	assert.Equal(t, wantMin, gotMin)

	gotMax, err := acc.Max()
	require.NoError(t, err)
	assert.Equal(t, wantMax, gotMax)

	gotMean, err := acc.Mean()
	require.NoError(t, err)
	assert.InDelta(t, wantMean, gotMean, 1e-9*math.Max(1, math.Abs(wantMean)))
}

func randomValues(rng *rand.Rand, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.Float64() * 1000
	}
	return values
}
