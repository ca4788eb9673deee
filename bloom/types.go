package bloom

import "errors"

var (
	ErrInvalidArgument = errors.New("bloom: invalid argument")
	ErrSizeOverflow    = errors.New("bloom: size computation overflow")
	ErrEmptyFilter     = errors.New("bloom: filter is empty")
	ErrBadK            = errors.New("bloom: hash count invalid")
	ErrBadMBits        = errors.New("bloom: bit count invalid")
)

// Logger is the subset of the datatrails common logger used by Filter.
// *logger.WrappedLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}
