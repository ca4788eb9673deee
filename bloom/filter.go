package bloom

import (
	"fmt"

	"github.com/forestrie/go-bloom/bitvec"
	"github.com/google/uuid"
)

// Filter is a Bloom filter sized for a target false positive probability at
// an expected element count.
type Filter struct {
	id       uuid.UUID
	params   Params
	bits     *bitvec.Vector
	count    uint64
	strategy IndexStrategy
	log      Logger
}

// New returns an empty filter sized for false positive probability p at n
// expected elements.
//
// It fails with ErrInvalidArgument if n <= 0 or p does not yield a positive
// size, and with ErrSizeOverflow if the size is not addressable.
func New(p float64, n int, opts ...Option) (*Filter, error) {
	params, err := NewParams(p, n)
	if err != nil {
		return nil, err
	}
	f, err := newFilter(params, opts...)
	if err != nil {
		return nil, err
	}
	f.debugf("bloom %s: created p=%v n=%d m=%d k=%d", f.id, p, n, params.Size, params.HashCount)
	return f, nil
}

// NewWithParams returns an empty filter with explicit dimensions, for example
// ones computed elsewhere with NewParams. BitsPerElement is recomputed.
func NewWithParams(params Params, opts ...Option) (*Filter, error) {
	if err := params.Check(); err != nil {
		return nil, err
	}
	params.BitsPerElement = float64(params.Size) / float64(params.ExpectedElements)
	f, err := newFilter(params, opts...)
	if err != nil {
		return nil, err
	}
	f.debugf("bloom %s: created n=%d m=%d k=%d", f.id, params.ExpectedElements, params.Size, params.HashCount)
	return f, nil
}

func newFilter(params Params, opts ...Option) (*Filter, error) {
	o := newOptions(opts...)

	var bits *bitvec.Vector
	var err error
	if o.Sparse {
		bits, err = bitvec.NewSparse(params.Size)
	} else {
		bits, err = bitvec.New(params.Size)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSizeOverflow, err)
	}

	return &Filter{
		id:       uuid.New(),
		params:   params,
		bits:     bits,
		strategy: o.Strategy,
		log:      o.Log,
	}, nil
}

// ID identifies the filter in log output.
func (f *Filter) ID() uuid.UUID { return f.id }

// Params returns the filter dimensions.
func (f *Filter) Params() Params { return f.params }

// Size returns m, the number of bits.
func (f *Filter) Size() uint64 { return f.params.Size }

// HashCount returns k, the number of bit positions per element.
func (f *Filter) HashCount() uint32 { return f.params.HashCount }

// ExpectedElements returns n, the design capacity.
func (f *Filter) ExpectedElements() int { return f.params.ExpectedElements }

// BitsPerElement returns m/n.
func (f *Filter) BitsPerElement() float64 { return f.params.BitsPerElement }

// Count returns the number of Add calls since creation or the last Clear. It
// counts calls, not distinct elements.
func (f *Filter) Count() uint64 { return f.count }

// IsEmpty reports whether nothing has been added since creation or the last
// Clear.
func (f *Filter) IsEmpty() bool { return f.count == 0 }

// Add inserts elem, encoded with ElementBytes.
//
// Add only fails when the index strategy misbehaves: an index out of range
// (bitvec.ErrIndexOutOfRange) or the wrong number of indices (ErrBadK). The
// count is not incremented in that case.
func (f *Filter) Add(elem any) error {
	indices, err := f.indicesFor(ElementBytes(elem))
	if err != nil {
		return err
	}
	for _, i := range indices {
		if err := f.bits.Set(i); err != nil {
			f.infof("bloom %s: index strategy %T: %v", f.id, f.strategy, err)
			return err
		}
	}
	f.count++
	if f.count == uint64(f.params.ExpectedElements)+1 {
		f.infof("bloom %s: %d elements exceeds capacity %d, false positive probability now %v",
			f.id, f.count, f.params.ExpectedElements, f.CurrentFalsePositiveProbability())
	}
	return nil
}

// AddAll adds each element in order, stopping at the first error. Elements
// added before the error remain in the filter.
func (f *Filter) AddAll(elems ...any) error {
	for _, elem := range elems {
		if err := f.Add(elem); err != nil {
			return err
		}
	}
	return nil
}

// MightContain returns false if elem is definitely not in the filter and true
// if it may be. An element passed to Add is always reported as present.
func (f *Filter) MightContain(elem any) (bool, error) {
	indices, err := f.indicesFor(ElementBytes(elem))
	if err != nil {
		return false, err
	}
	for _, i := range indices {
		ok, err := f.bits.Get(i)
		if err != nil {
			f.infof("bloom %s: index strategy %T: %v", f.id, f.strategy, err)
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// MightContainAll reports whether every element might be in the filter. It
// stops at the first element that is definitely absent.
func (f *Filter) MightContainAll(elems ...any) (bool, error) {
	for _, elem := range elems {
		ok, err := f.MightContain(elem)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// ExpectedFalsePositiveProbability returns the false positive probability
// once ExpectedElements have been added.
func (f *Filter) ExpectedFalsePositiveProbability() float64 {
	return f.FalsePositiveProbabilityAt(uint64(f.params.ExpectedElements))
}

// CurrentFalsePositiveProbability returns the false positive probability for
// the current Count. It exceeds the design rate once Count passes
// ExpectedElements.
func (f *Filter) CurrentFalsePositiveProbability() float64 {
	return f.FalsePositiveProbabilityAt(f.count)
}

// FalsePositiveProbabilityAt returns the false positive probability this
// filter would have after elements insertions.
func (f *Filter) FalsePositiveProbabilityAt(elements uint64) float64 {
	return FalsePositiveProbability(f.params.Size, f.params.HashCount, elements)
}

// BitsPerElementActual returns Size/Count, or ErrEmptyFilter if Count is 0.
func (f *Filter) BitsPerElementActual() (float64, error) {
	if f.count == 0 {
		return 0, ErrEmptyFilter
	}
	return float64(f.params.Size) / float64(f.count), nil
}

// FillRatio returns the fraction of bits that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.params.Size)
}

// Clear removes everything from the filter. The dimensions are unchanged.
func (f *Filter) Clear() {
	f.bits.ClearAll()
	f.count = 0
	f.debugf("bloom %s: cleared", f.id)
}

// indicesFor must not write Filter state: MightContain is a reader.
func (f *Filter) indicesFor(data []byte) ([]uint64, error) {
	var buf [16]uint64
	indices := f.strategy.AppendIndices(buf[:0], data, f.params.HashCount, f.params.Size)
	if len(indices) != int(f.params.HashCount) {
		err := fmt.Errorf("%w: index strategy %T returned %d indices, want %d",
			ErrBadK, f.strategy, len(indices), f.params.HashCount)
		f.infof("bloom %s: %v", f.id, err)
		return nil, err
	}
	return indices, nil
}

func (f *Filter) debugf(format string, args ...any) {
	if f.log != nil {
		f.log.Debugf(format, args...)
	}
}

func (f *Filter) infof(format string, args ...any) {
	if f.log != nil {
		f.log.Infof(format, args...)
	}
}
