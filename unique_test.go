package slugkit_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit"
)

// scopeOf builds a MemoryScope preloaded with the given slug assignments.
func scopeOf(t *testing.T, taken map[string]slugkit.EntityRef) *slugkit.MemoryScope {
	t.Helper()
	scope := slugkit.NewMemoryScope()
	for slug, ref := range taken {
		require.NoError(t, scope.Claim(context.Background(), slug, ref))
	}
	return scope
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		title    string
		taken    map[string]slugkit.EntityRef
		opts     []slugkit.GenerateOption
		expected string
	}{
		{
			name:     "no collision returns normalized title",
			title:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "single collision starts suffix sequence",
			title:    "Hello World",
			taken:    map[string]slugkit.EntityRef{"hello-world": "post-1"},
			expected: "hello-world-1",
		},
		{
			name:  "second collision bumps suffix",
			title: "Hello World",
			taken: map[string]slugkit.EntityRef{
				"hello-world":   "post-1",
				"hello-world-1": "post-2",
			},
			expected: "hello-world-2",
		},
		{
			name:  "deep collision chain",
			title: "Hello World",
			taken: map[string]slugkit.EntityRef{
				"hello-world":   "post-1",
				"hello-world-1": "post-2",
				"hello-world-2": "post-3",
				"hello-world-3": "post-4",
			},
			expected: "hello-world-4",
		},
		{
			name:     "numeric-looking title bumps its own number",
			title:    "Article 2021",
			taken:    map[string]slugkit.EntityRef{"article-2021": "post-1"},
			expected: "article-2022",
		},
		{
			name:     "chapter nine becomes chapter ten",
			title:    "Chapter 9",
			taken:    map[string]slugkit.EntityRef{"chapter-9": "post-1"},
			expected: "chapter-10",
		},
		{
			name:  "suffix gap is reused",
			title: "Hello World",
			taken: map[string]slugkit.EntityRef{
				"hello-world":   "post-1",
				"hello-world-2": "post-3",
			},
			expected: "hello-world-1",
		},
		{
			name:     "non-numeric trailing segment starts at one",
			title:    "Hello World Again",
			taken:    map[string]slugkit.EntityRef{"hello-world-again": "post-1"},
			expected: "hello-world-again-1",
		},
		{
			name:     "unicode title",
			title:    "Café & Restaurant",
			taken:    map[string]slugkit.EntityRef{"caf-restaurant": "post-1"},
			expected: "cafe-restaurant",
		},
		{
			name:  "custom separator drives bumping",
			title: "Hello World",
			taken: map[string]slugkit.EntityRef{
				"hello_world":   "post-1",
				"hello_world_1": "post-2",
			},
			opts:     []slugkit.GenerateOption{slugkit.Normalize(slugkit.Separator("_"))},
			expected: "hello_world_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := scopeOf(t, tt.taken)
			result, err := slugkit.Generate(ctx, tt.title, scope, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGenerateSelfExclusion(t *testing.T) {
	ctx := context.Background()

	t.Run("entity keeps its own slug", func(t *testing.T) {
		scope := scopeOf(t, map[string]slugkit.EntityRef{"hello-world": "post-42"})

		result, err := slugkit.Generate(ctx, "Hello World", scope, slugkit.ExcludeSelf("post-42"))
		require.NoError(t, err)
		assert.Equal(t, "hello-world", result)
	})

	t.Run("other entities still collide", func(t *testing.T) {
		scope := scopeOf(t, map[string]slugkit.EntityRef{
			"hello-world":   "post-1",
			"hello-world-1": "post-42",
		})

		result, err := slugkit.Generate(ctx, "Hello World", scope, slugkit.ExcludeSelf("post-42"))
		require.NoError(t, err)
		assert.Equal(t, "hello-world-1", result)
	})

	t.Run("no exclusion bumps past own slug", func(t *testing.T) {
		scope := scopeOf(t, map[string]slugkit.EntityRef{"hello-world": "post-42"})

		result, err := slugkit.Generate(ctx, "Hello World", scope)
		require.NoError(t, err)
		assert.Equal(t, "hello-world-1", result)
	})
}

func TestGenerateSequence(t *testing.T) {
	ctx := context.Background()
	scope := slugkit.NewMemoryScope()

	expected := []string{"hello-world", "hello-world-1", "hello-world-2"}
	for i, want := range expected {
		result, err := slugkit.Generate(ctx, "Hello World", scope)
		require.NoError(t, err)
		assert.Equal(t, want, result)

		ref := slugkit.EntityRef(fmt.Sprintf("post-%d", i))
		require.NoError(t, scope.Claim(ctx, result, ref))
	}
}

func TestGenerateDeterminism(t *testing.T) {
	ctx := context.Background()
	scope := slugkit.NewMemoryScope()

	first, err := slugkit.Generate(ctx, "Some Fixed Title", scope)
	require.NoError(t, err)

	// Without claiming, repeated calls return the identical slug.
	for range 5 {
		result, err := slugkit.Generate(ctx, "Some Fixed Title", scope)
		require.NoError(t, err)
		assert.Equal(t, first, result)
	}
	assert.Equal(t, 0, scope.Len())
}

func TestGeneratePairwiseUnique(t *testing.T) {
	ctx := context.Background()
	scope := slugkit.NewMemoryScope()

	const n = 50
	seen := make(map[string]struct{}, n)
	for i := range n {
		result, err := slugkit.Generate(ctx, "Hello World", scope)
		require.NoError(t, err)

		_, dup := seen[result]
		require.False(t, dup, "duplicate slug %q", result)
		seen[result] = struct{}{}

		require.NoError(t, scope.Claim(ctx, result, slugkit.EntityRef(fmt.Sprintf("post-%d", i))))
	}
	assert.Len(t, seen, n)
}

func TestGenerateEmptyTitle(t *testing.T) {
	ctx := context.Background()
	scope := slugkit.NewMemoryScope()

	for _, title := range []string{"", "   ", "!!! ---", "!@#$%", "😀 🌍"} {
		t.Run(fmt.Sprintf("%q", title), func(t *testing.T) {
			result, err := slugkit.Generate(ctx, title, scope)
			assert.ErrorIs(t, err, slugkit.ErrEmptySlug)
			assert.Empty(t, result)
		})
	}
}

func TestGenerateExhausted(t *testing.T) {
	ctx := context.Background()

	probes := 0
	always := slugkit.CheckerFunc(func(_ context.Context, _ string) (slugkit.EntityRef, bool, error) {
		probes++
		return "someone-else", true, nil
	})

	result, err := slugkit.Generate(ctx, "Hello World", always, slugkit.MaxAttempts(25))
	assert.ErrorIs(t, err, slugkit.ErrExhausted)
	assert.Empty(t, result)
	assert.Equal(t, 25, probes)
}

func TestGenerateCheckerError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	failing := slugkit.CheckerFunc(func(_ context.Context, _ string) (slugkit.EntityRef, bool, error) {
		return "", false, boom
	})

	result, err := slugkit.Generate(ctx, "Hello World", failing)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, result)
}

func TestGenerateNilChecker(t *testing.T) {
	result, err := slugkit.Generate(context.Background(), "Hello World", nil)
	assert.ErrorIs(t, err, slugkit.ErrNilChecker)
	assert.Empty(t, result)
}

func TestGenerateDoesNotMutateScope(t *testing.T) {
	ctx := context.Background()
	scope := scopeOf(t, map[string]slugkit.EntityRef{
		"hello-world":   "post-1",
		"hello-world-1": "post-2",
	})

	_, err := slugkit.Generate(ctx, "Hello World", scope)
	require.NoError(t, err)
	assert.Equal(t, 2, scope.Len())
}

func BenchmarkGenerate(b *testing.B) {
	ctx := context.Background()

	b.Run("no_collision", func(b *testing.B) {
		scope := slugkit.NewMemoryScope()
		b.ReportAllocs()
		for b.Loop() {
			_, _ = slugkit.Generate(ctx, "Hello World", scope)
		}
	})

	b.Run("collision_chain_100", func(b *testing.B) {
		scope := slugkit.NewMemoryScope()
		_ = scope.Claim(ctx, "hello-world", "post-0")
		for i := 1; i < 100; i++ {
			_ = scope.Claim(ctx, fmt.Sprintf("hello-world-%d", i), slugkit.EntityRef(fmt.Sprintf("post-%d", i)))
		}
		b.ReportAllocs()
		for b.Loop() {
			_, _ = slugkit.Generate(ctx, "Hello World", scope)
		}
	})
}
