// Package bitvec provides the fixed length bit vector that backs a bloom.Filter.
//
// The length is decided once, by New or NewSparse, and never changes. Every
// accessor checks its index against that length and returns
// ErrIndexOutOfRange rather than growing the vector.
package bitvec
