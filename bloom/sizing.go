package bloom

import (
	"fmt"
	"math"
)

// ln2Sq is (ln 2)^2, the denominator of the optimal size formula.
const ln2Sq = math.Ln2 * math.Ln2

// Params are the derived dimensions of a filter.
type Params struct {
	// Size is m, the number of bits.
	Size uint64
	// HashCount is k, the number of bit positions per element.
	HashCount uint32
	// ExpectedElements is n, the design capacity.
	ExpectedElements int
	// BitsPerElement is Size / ExpectedElements.
	BitsPerElement float64
}

// NewParams sizes a filter for false positive probability p at n elements.
func NewParams(p float64, n int) (Params, error) {
	m, err := OptimalSize(p, n)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Size:             m,
		HashCount:        OptimalHashCount(m, n),
		ExpectedElements: n,
		BitsPerElement:   float64(m) / float64(n),
	}, nil
}

// Check validates explicitly provided params. BitsPerElement is not checked,
// it is informational.
func (p Params) Check() error {
	if p.ExpectedElements <= 0 {
		return fmt.Errorf("%w: expected elements %d must be greater than zero", ErrInvalidArgument, p.ExpectedElements)
	}
	if p.Size == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrBadMBits)
	}
	if p.Size >= math.MaxInt64 {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrSizeOverflow)
	}
	if p.HashCount == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrBadK)
	}
	return nil
}

// OptimalSize returns m = ceil(-n*ln(p)/(ln 2)^2).
//
// It fails with ErrInvalidArgument if n <= 0, or if p does not produce a
// finite positive size (p <= 0, p >= 1 or NaN).
func OptimalSize(p float64, n int) (uint64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: expected elements %d must be greater than zero", ErrInvalidArgument, n)
	}
	m := math.Ceil(-float64(n) * math.Log(p) / ln2Sq)
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return 0, fmt.Errorf("%w: probability %v does not give a positive size", ErrInvalidArgument, p)
	}
	if m >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v bits", ErrSizeOverflow, m)
	}
	return uint64(m), nil
}

// OptimalHashCount returns k = ceil((m/n)*ln 2), at least 1.
//
// The caller is responsible for ensuring n > 0.
func OptimalHashCount(m uint64, n int) uint32 {
	k := math.Ceil((float64(m) / float64(n)) * math.Ln2)
	if k < 1 {
		return 1
	}
	if k > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(k)
}

// FalsePositiveProbability returns (1 - e^(-k*elements/m))^k.
func FalsePositiveProbability(m uint64, k uint32, elements uint64) float64 {
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(elements)/float64(m)), kf)
}
