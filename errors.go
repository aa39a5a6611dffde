package slugkit

import "errors"

// Sentinel errors for slug generation.
var (
	// ErrEmptySlug is returned when normalization leaves no usable characters,
	// e.g. a title made entirely of punctuation or whitespace. Callers recover
	// by substituting a generated token (see Fallback) or rejecting the input.
	ErrEmptySlug = errors.New("slugkit: normalization produced an empty slug")

	// ErrExhausted is returned when the collision loop exceeds its attempt
	// bound without finding a free candidate.
	ErrExhausted = errors.New("slugkit: slug candidate space exhausted")

	// ErrNilChecker is returned when Generate is called without an existence checker.
	ErrNilChecker = errors.New("slugkit: nil existence checker")

	// ErrTaken is returned by MemoryScope.Claim when the slug is already
	// held by a different entity.
	ErrTaken = errors.New("slugkit: slug already claimed")
)
