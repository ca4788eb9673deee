package bloom

import (
	"math"
	"testing"

	bbloom "github.com/bits-and-blooms/bloom/v3"
	"github.com/stretchr/testify/require"
)

func TestSizing(t *testing.T) {
	m, err := OptimalSize(0.01, 1000)
	require.NoError(t, err)
	require.Equal(t, uint64(9586), m)
	require.Equal(t, uint32(7), OptimalHashCount(m, 1000))

	params, err := NewParams(0.01, 1000)
	require.NoError(t, err)
	require.Equal(t, Params{
		Size:             9586,
		HashCount:        7,
		ExpectedElements: 1000,
		BitsPerElement:   9.586,
	}, params)
}

func TestSizingIsDeterministic(t *testing.T) {
	first, err := NewParams(0.001, 12345)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := NewParams(0.001, 12345)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSizingMatchesEstimateParameters(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		n    int
	}{
		{"1%@1000", 0.01, 1000},
		{"0.1%@10000", 0.001, 10000},
		{"5%@500", 0.05, 500},
		{"1%@1", 0.01, 1},
		{"0.01%@250000", 0.0001, 250000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantM, wantK := bbloom.EstimateParameters(uint(tt.n), tt.p)
			params, err := NewParams(tt.p, tt.n)
			require.NoError(t, err)
			require.Equal(t, uint64(wantM), params.Size)
			require.Equal(t, uint32(wantK), params.HashCount)
		})
	}
}

func TestSizingRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		n    int
	}{
		{"zero elements", 0.01, 0},
		{"negative elements", 0.01, -10},
		{"probability one", 1, 1000},
		{"probability above one", 1.5, 1000},
		{"probability zero", 0, 1000},
		{"negative probability", -0.1, 1000},
		{"probability NaN", math.NaN(), 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptimalSize(tt.p, tt.n)
			require.ErrorIs(t, err, ErrInvalidArgument)
			_, err = NewParams(tt.p, tt.n)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSizingOverflow(t *testing.T) {
	_, err := OptimalSize(1e-300, math.MaxInt)
	require.ErrorIs(t, err, ErrSizeOverflow)
}

func TestSizingSmallest(t *testing.T) {
	// Nearly useless but valid: one element at 99% false positives.
	params, err := NewParams(0.99, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), params.Size)
	require.Equal(t, uint32(1), params.HashCount)
}

func TestOptimalHashCountIsAtLeastOne(t *testing.T) {
	require.Equal(t, uint32(1), OptimalHashCount(1, 1000))
	require.Equal(t, uint32(1), OptimalHashCount(0, 1000))
}

func TestFalsePositiveProbability(t *testing.T) {
	require.Equal(t, 0.0, FalsePositiveProbability(9586, 7, 0))
	require.InDelta(t, 0.01, FalsePositiveProbability(9586, 7, 1000), 0.0005)

	last := 0.0
	for n := uint64(0); n <= 5000; n += 250 {
		p := FalsePositiveProbability(9586, 7, n)
		require.GreaterOrEqual(t, p, last)
		require.LessOrEqual(t, p, 1.0)
		last = p
	}
}

func TestParamsCheck(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"ok", Params{Size: 64, HashCount: 3, ExpectedElements: 8}, nil},
		{"no elements", Params{Size: 64, HashCount: 3}, ErrInvalidArgument},
		{"no bits", Params{HashCount: 3, ExpectedElements: 8}, ErrBadMBits},
		{"no hashes", Params{Size: 64, ExpectedElements: 8}, ErrBadK},
		{"too many bits", Params{Size: math.MaxUint64, HashCount: 3, ExpectedElements: 8}, ErrSizeOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Check()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
