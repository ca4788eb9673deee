package bloom

import "github.com/spaolacci/murmur3"

// Murmur3 computes each of the k indices with its own murmur3 hash, seeded
// with the index number. It costs k hash computations per element.
type Murmur3 struct{}

func (Murmur3) AppendIndices(dst []uint64, data []byte, k uint32, m uint64) []uint64 {
	if m == 0 {
		return dst
	}
	for i := uint32(0); i < k; i++ {
		dst = append(dst, murmur3.Sum64WithSeed(data, i)%m)
	}
	return dst
}
