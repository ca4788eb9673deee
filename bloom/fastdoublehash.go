package bloom

import "github.com/cespare/xxhash/v2"

const fastDomain = 0xB0

// FastDoubleHash is the double hashing scheme of DoubleHash over two 64-bit
// xxhash digests instead of two cryptographic ones:
//
//	index[i] = (h1 + i*h2) mod m
//
// h2 is forced odd so successive indices never collapse onto one position.
// Use it when elements are not attacker controlled.
type FastDoubleHash struct{}

func (FastDoubleHash) AppendIndices(dst []uint64, data []byte, k uint32, m uint64) []uint64 {
	if m == 0 {
		return dst
	}
	h1, h2 := xxhashPair(data)
	for i := uint64(0); i < uint64(k); i++ {
		dst = append(dst, (h1+i*h2)%m)
	}
	return dst
}

func xxhashPair(data []byte) (h1 uint64, h2 uint64) {
	// h2 = xxhash( 0xB0 || data )
	h1 = xxhash.Sum64(data)
	d := xxhash.New()
	_, _ = d.Write([]byte{fastDomain})
	_, _ = d.Write(data)
	h2 = d.Sum64() | 1
	return h1, h2
}
