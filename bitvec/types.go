package bitvec

import "errors"

var (
	ErrInvalidSize     = errors.New("bitvec: length must be greater than zero")
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")
)
