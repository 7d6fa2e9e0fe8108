// Package errors defines all exported error sentinels for the colormph library.
//
// This is the single source of truth for error values. Both the top-level
// colormph package and its commands import from here, ensuring errors.Is
// checks work across package boundaries.
package errors

import "errors"

// Build errors
var (
	ErrEmptyPalette        = errors.New("colormph: cannot build table with zero entries")
	ErrTooManyKeys         = errors.New("colormph: entry count exceeds maximum (2^32 - 1)")
	ErrDuplicateKey        = errors.New("colormph: duplicate name in palette")
	ErrSaltSearchExhausted = errors.New("colormph: no salt resolves bucket collisions")
	ErrInvalidSaltLimit    = errors.New("colormph: salt limit must be at least 2")
	ErrInvalidPrefilterFP  = errors.New("colormph: prefilter false-positive rate must be in (0, 1)")
)

// Serialization errors
var (
	ErrInvalidMagic   = errors.New("colormph: invalid magic number")
	ErrInvalidVersion = errors.New("colormph: unsupported format version")
	ErrChecksumFailed = errors.New("colormph: table checksum verification failed")
	ErrTruncatedTable = errors.New("colormph: serialized table is truncated")
	ErrCorruptedTable = errors.New("colormph: serialized table is corrupted")
)
