// Package slugkit generates URL-safe slugs from arbitrary strings and
// resolves collisions against an existence-check collaborator.
//
// The package converts text to web-friendly identifiers by normalizing
// diacritics, replacing special characters with separators, and offering
// configurable options for length limits and suffixes. On top of plain
// normalization it provides Generate, which guarantees uniqueness within a
// caller-supplied scope using deterministic numeric suffix bumping.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugkit"
//
//	// Simple slug generation
//	s := slugkit.Make("Hello, World!")
//	// Output: "hello-world"
//
//	// With Unicode normalization
//	s = slugkit.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
//	// With configuration options
//	s = slugkit.Make("Long Article Title",
//		slugkit.MaxLength(20),
//		slugkit.WithSuffix(6),
//	)
//	// Output: "long-article-x3k7f9"
//
// # Unique Slugs
//
// Generate consumes a Checker — "is this candidate already assigned, and to
// whom?" — and probes candidates until one is free:
//
//	scope := slugkit.NewMemoryScope()
//
//	s, err := slugkit.Generate(ctx, "Hello World", scope)
//	// "hello-world"
//	_ = scope.Claim(ctx, s, "post-1")
//
//	s, err = slugkit.Generate(ctx, "Hello World", scope)
//	// "hello-world-1"
//
// Collisions are resolved by incrementing a trailing numeric segment, so the
// sequence is "hello-world", "hello-world-1", "hello-world-2", never
// "hello-world-1-1". A title that already normalizes to a hyphen-number
// ending behaves the same way: "article-2021" colliding yields
// "article-2022". The two cases are structurally indistinguishable and the
// package makes no attempt to tell them apart.
//
// Production scopes are usually a database query:
//
//	scope := slugkit.CheckerFunc(func(ctx context.Context, candidate string) (slugkit.EntityRef, bool, error) {
//		var id string
//		err := db.QueryRowContext(ctx,
//			"SELECT id FROM posts WHERE slug = $1", candidate).Scan(&id)
//		if errors.Is(err, sql.ErrNoRows) {
//			return "", false, nil
//		}
//		return slugkit.EntityRef(id), err == nil, err
//	})
//
// When an existing entity is re-slugged after a title edit, pass its own
// reference so it never conflicts with itself:
//
//	s, err := slugkit.Generate(ctx, newTitle, scope,
//		slugkit.ExcludeSelf("post-42"),
//	)
//
// Only invoke re-slugging when the title actually changed; the generator is
// stateless and would otherwise bump the suffix on every edit.
//
// # Concurrency
//
// Generate itself is pure and never mutates the scope. Checking existence
// and persisting the chosen slug are two separate steps, so concurrent
// writers can both see a candidate as free. Either serialize the two steps
// (MemoryScope.Claim does this for a single process) or enforce uniqueness
// with a storage-level constraint and retry Generate when it fires; the
// generator is deterministic and safe to retry against an updated scope.
//
// # Failure Modes
//
// Generate returns ErrEmptySlug when a title normalizes to nothing (e.g.
// "!!!") — callers substitute a Fallback token or reject the input — and
// ErrExhausted when the collision loop hits its attempt bound
// (DefaultMaxAttempts, tunable via MaxAttempts). Both are recoverable.
// Make never fails: malformed but non-empty text always normalizes.
//
// # Unicode Support
//
// Common Latin diacritics fold to ASCII equivalents:
//
//	slugkit.Make("München straße")    // "munchen-strase"
//	slugkit.Make("naïve résumé")      // "naive-resume"
//	slugkit.Make("Zażółć gęślą jaźń") // "zazolc-gesla-jazn"
//
// Unsupported character sets (Cyrillic, CJK, emoji) are replaced with
// separators.
package slugkit
