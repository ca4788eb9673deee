package bitvec

import (
	"fmt"
	"math"
)

// Vector is a fixed length sequence of bits, all initially zero.
//
// Vector is not safe for concurrent use.
type Vector struct {
	length uint64
	bits   store
}

// New returns a dense vector of length bits.
func New(length uint64) (*Vector, error) {
	if err := CheckLength(length); err != nil {
		return nil, err
	}
	return &Vector{length: length, bits: newDenseStore(length)}, nil
}

// NewSparse returns a vector of length bits whose memory use grows with the
// number of set bits. It suits very large vectors that stay lightly filled.
func NewSparse(length uint64) (*Vector, error) {
	if err := CheckLength(length); err != nil {
		return nil, err
	}
	return &Vector{length: length, bits: newSparseStore()}, nil
}

// CheckLength validates a requested vector length.
func CheckLength(length uint64) error {
	if length == 0 {
		return ErrInvalidSize
	}
	// bitset indexes with uint
	if length > math.MaxUint {
		return fmt.Errorf("%w: %d bits is not addressable", ErrInvalidSize, length)
	}
	return nil
}

// Len returns the number of bits in the vector.
func (v *Vector) Len() uint64 { return v.length }

func (v *Vector) check(i uint64) error {
	if i >= v.length {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, v.length)
	}
	return nil
}

// Set sets bit i to 1.
func (v *Vector) Set(i uint64) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.bits.set(i)
	return nil
}

// Clear sets bit i to 0.
func (v *Vector) Clear(i uint64) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.bits.clear(i)
	return nil
}

// Get reports whether bit i is 1.
func (v *Vector) Get(i uint64) (bool, error) {
	if err := v.check(i); err != nil {
		return false, err
	}
	return v.bits.test(i), nil
}

// ClearAll resets every bit to 0. The length is unchanged.
func (v *Vector) ClearAll() { v.bits.clearAll() }

// Count returns the number of bits set to 1.
func (v *Vector) Count() uint64 { return v.bits.count() }
