package bloom

// IndexStrategy maps the canonical bytes of an element to bit positions.
//
// AppendIndices must append exactly k indices, each in [0, m), to dst and
// return the extended slice. It must be deterministic: the same data, k and m
// always give the same indices, otherwise the filter can report false
// negatives. The reported false positive rates assume the indices behave like
// k independent uniform draws over [0, m).
//
// For m == 0 there is no valid index and dst is returned unchanged.
type IndexStrategy interface {
	AppendIndices(dst []uint64, data []byte, k uint32, m uint64) []uint64
}
