package domain

import "errors"

var (
	// ErrInvalidCycles indicates a cycle count below one.
	ErrInvalidCycles = errors.New("cycle count must be at least 1")

	// ErrInvalidWork indicates a non-positive work interval.
	ErrInvalidWork = errors.New("work minutes must be positive")

	// ErrInvalidBreak indicates a non-positive break interval.
	ErrInvalidBreak = errors.New("break minutes must be positive")

	// ErrPlaylistNotFound indicates the requested playlist is absent
	// from the local library and catalog search was not enabled. This is
	// the only fatal media error.
	ErrPlaylistNotFound = errors.New("playlist not found in the local library")
)
