package slugkit

import (
	"crypto/rand"
	"time"
)

// defaultSuffixLength is used by MinLength padding, ReservedSlugs, and Fallback.
const defaultSuffixLength = 6

const (
	suffixAlphabet      = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixAlphabetMixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// randomSuffix returns a random alphanumeric string of the given length.
// The alphabet is lowercase unless case preservation is enabled.
func randomSuffix(length int, lowercase bool) string {
	if length <= 0 {
		return ""
	}
	alphabet := suffixAlphabet
	if !lowercase {
		alphabet = suffixAlphabetMixed
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// Fallback: time-based entropy (degraded but functional)
		seed := uint64(time.Now().UnixNano())
		for i := range buf {
			seed = seed*6364136223846793005 + 1442695040888963407
			buf[i] = byte(seed >> 33)
		}
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

// Fallback builds an opaque slug for titles that normalize to nothing:
// the slugified prefix joined with a 6-character random token, or the token
// alone when the prefix itself produces an empty slug.
//
// Typical recovery from ErrEmptySlug:
//
//	s, err := slugkit.Generate(ctx, title, scope)
//	if errors.Is(err, slugkit.ErrEmptySlug) {
//	    s, err = slugkit.Generate(ctx, slugkit.Fallback("post"), scope)
//	}
func Fallback(prefix string) string {
	return joinSuffix(Make(prefix), randomSuffix(defaultSuffixLength, true), "-")
}
