package slugkit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxAttempts bounds the collision loop. A scope that manufactures
// conflicts past this point is treated as exhausted rather than probed forever.
const DefaultMaxAttempts = 1000

// GenerateOption configures a single Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	makeOpts    []Option
	excludeSelf EntityRef
	maxAttempts int
}

func defaultGenerateOptions() *generateOptions {
	return &generateOptions{
		maxAttempts: DefaultMaxAttempts,
	}
}

// ExcludeSelf marks the entity currently being re-slugged. A conflict
// reported for this reference is not treated as a collision, so an entity
// keeps its own slug instead of bumping it on every save.
func ExcludeSelf(ref EntityRef) GenerateOption {
	return func(o *generateOptions) {
		o.excludeSelf = ref
	}
}

// MaxAttempts overrides the collision loop bound.
// Default: DefaultMaxAttempts. Values below 1 are ignored.
func MaxAttempts(n int) GenerateOption {
	return func(o *generateOptions) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// Normalize forwards normalization options to the underlying Make call.
// The configured separator also drives numeric suffix parsing and joining.
func Normalize(opts ...Option) GenerateOption {
	return func(o *generateOptions) {
		o.makeOpts = append(o.makeOpts, opts...)
	}
}

// Generate normalizes title into a slug that is unique within scope.
//
// Collisions are resolved deterministically by numeric suffix bumping: the
// first collision of "hello-world" yields "hello-world-1", the next
// "hello-world-2", and so on. A candidate whose trailing segment already
// parses as a non-negative integer is incremented in place, which means a
// title normalizing to "article-2021" resolves a collision as
// "article-2022" — numeric-looking titles are indistinguishable from
// previously bumped slugs. That property is deliberate and documented
// rather than special-cased.
//
// Generate never mutates scope; persisting the returned slug (and
// serializing that step against concurrent writers) is the caller's
// responsibility. It returns ErrEmptySlug when the title normalizes to
// nothing, ErrExhausted when the attempt bound is hit, and wraps any error
// from the checker.
//
// Re-slugging on edit must only happen when the title actually changed;
// the generator is stateless and cannot detect unchanged titles itself.
func Generate(ctx context.Context, title string, scope Checker, opts ...GenerateOption) (string, error) {
	if scope == nil {
		return "", ErrNilChecker
	}

	g := defaultGenerateOptions()
	for _, opt := range opts {
		opt(g)
	}

	o := defaultOptions()
	for _, opt := range g.makeOpts {
		opt(o)
	}

	base := makeWith(title, o)
	if base == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptySlug, title)
	}

	candidate := base
	for range g.maxAttempts {
		ref, exists, err := scope.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slugkit: existence check for %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		if g.excludeSelf != "" && ref == g.excludeSelf {
			// An entity never conflicts with itself.
			return candidate, nil
		}
		candidate = bump(base, candidate, o.separator)
	}

	return "", fmt.Errorf("%w: no free candidate for %q after %d attempts", ErrExhausted, base, g.maxAttempts)
}

// bump computes the next candidate. A parseable trailing numeric segment is
// incremented; otherwise the suffix sequence starts at base + sep + "1".
func bump(base, candidate, sep string) string {
	if sep == "" {
		// Without a separator the counter is glued onto the base directly.
		if rest, ok := strings.CutPrefix(candidate, base); ok {
			if n, numeric := parseSuffix(rest); numeric {
				return base + strconv.FormatUint(n+1, 10)
			}
		}
		return base + "1"
	}
	if i := strings.LastIndex(candidate, sep); i >= 0 {
		if n, ok := parseSuffix(candidate[i+len(sep):]); ok {
			return candidate[:i] + sep + strconv.FormatUint(n+1, 10)
		}
	}
	return base + sep + "1"
}

// parseSuffix is a total parse of a candidate's trailing segment into a
// non-negative integer. Only plain ASCII digit strings qualify; signs,
// spaces, and values overflowing uint64 do not.
func parseSuffix(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
