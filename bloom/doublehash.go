package bloom

import (
	"crypto/sha256"
	"hash"
	"math/big"
	"math/bits"

	"golang.org/x/crypto/sha3"
)

// DoubleHash derives k indices from two digests of the element:
//
//	index[0] = first mod m
//	index[i] = (index[i-1] + second) mod m
//
// where first and second are the digests read as big-endian unsigned
// integers. The zero value uses SHA3-256 for the first digest and SHA-256 for
// the second; the two constructions are unrelated so their outputs are not
// correlated.
type DoubleHash struct {
	first  func() hash.Hash
	second func() hash.Hash
}

// NewDoubleHash returns a DoubleHash using the provided digest constructors.
// A nil constructor selects the default for that position.
func NewDoubleHash(first, second func() hash.Hash) DoubleHash {
	return DoubleHash{first: first, second: second}
}

func (d DoubleHash) AppendIndices(dst []uint64, data []byte, k uint32, m uint64) []uint64 {
	if k == 0 || m == 0 {
		return dst
	}
	first, second := d.first, d.second
	if first == nil {
		first = sha3.New256
	}
	if second == nil {
		second = sha256.New
	}

	mod := new(big.Int).SetUint64(m)
	a := digestMod(first(), data, mod)
	b := digestMod(second(), data, mod)

	dst = append(dst, a)
	for i := uint32(1); i < k; i++ {
		a = addMod(a, b, m)
		dst = append(dst, a)
	}
	return dst
}

// digestMod returns H(data) mod m with the digest read as a big-endian
// unsigned integer.
func digestMod(h hash.Hash, data []byte, m *big.Int) uint64 {
	h.Write(data)
	v := new(big.Int).SetBytes(h.Sum(nil))
	return v.Mod(v, m).Uint64()
}

// addMod returns (a + b) mod m for a, b < m.
func addMod(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return s
}
