// File: internal/types/errors.go
package types

import "errors"

var (
	// ErrInvalidSignature indicates the buffer does not begin with the mbdb magic.
	ErrInvalidSignature = errors.New("invalid mbdb signature")

	// ErrTruncatedInput indicates a field read would run past the end of the
	// buffer. Record boundaries are implicit in cumulative field consumption,
	// so a single overrun means the rest of the buffer cannot be trusted.
	ErrTruncatedInput = errors.New("truncated mbdb data")
)
