package bitvec

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"
)

// store is the storage behind a Vector. Indices are pre-checked by Vector.
type store interface {
	set(i uint64)
	clear(i uint64)
	test(i uint64) bool
	clearAll()
	count() uint64
}

// denseStore packs the bits into uint64 words, ceil(length/64) of them.
type denseStore struct {
	bits *bitset.BitSet
}

func newDenseStore(length uint64) *denseStore {
	return &denseStore{bits: bitset.New(uint(length))}
}

func (s *denseStore) set(i uint64)       { s.bits.Set(uint(i)) }
func (s *denseStore) clear(i uint64)     { s.bits.Clear(uint(i)) }
func (s *denseStore) test(i uint64) bool { return s.bits.Test(uint(i)) }
func (s *denseStore) clearAll()          { s.bits.ClearAll() }
func (s *denseStore) count() uint64      { return uint64(s.bits.Count()) }

// sparseStore keeps only the set bits, in a compressed roaring bitmap. Memory
// is proportional to the number of set bits rather than the length.
type sparseStore struct {
	bits *roaring64.Bitmap
}

func newSparseStore() *sparseStore {
	return &sparseStore{bits: roaring64.New()}
}

func (s *sparseStore) set(i uint64)       { s.bits.Add(i) }
func (s *sparseStore) clear(i uint64)     { s.bits.Remove(i) }
func (s *sparseStore) test(i uint64) bool { return s.bits.Contains(i) }
func (s *sparseStore) clearAll()          { s.bits.Clear() }
func (s *sparseStore) count() uint64      { return s.bits.GetCardinality() }
