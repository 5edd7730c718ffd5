package pathier

import "errors"

var (
	// ErrSegmentNotFound is returned by MoveUp, MoveUnder and Separate when
	// the requested name is not one of the path's segments.
	ErrSegmentNotFound = errors.New("segment not found")

	// ErrUnsupportedFormat is returned by Load and Dump for extensions that
	// have no structured codec.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoMetadata is returned by comparisons when either path does not exist.
	ErrNoMetadata = errors.New("no metadata for missing path")

	// ErrUnknownEncoding is returned when WithEncoding names no known encoding.
	ErrUnknownEncoding = errors.New("unknown encoding")
)
