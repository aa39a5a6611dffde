package slugkit

import (
	"context"
	"sync"
)

// EntityRef identifies the entity holding a slug within a scope. The zero
// value means "no entity". Comparisons against ExcludeSelf use plain
// equality, so any stable string identity (primary key, UUID) works.
type EntityRef string

// Checker reports whether a candidate slug is already assigned within a
// uniqueness scope, and by whom. Implementations are typically backed by a
// database query; they must not reserve the candidate.
type Checker interface {
	// Exists returns the holder's reference and true when candidate is taken.
	Exists(ctx context.Context, candidate string) (EntityRef, bool, error)
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context, candidate string) (EntityRef, bool, error)

func (f CheckerFunc) Exists(ctx context.Context, candidate string) (EntityRef, bool, error) {
	return f(ctx, candidate)
}

// MemoryScope is an in-memory uniqueness scope guarded by a mutex.
//
// Claim is atomic with respect to Exists, so a single-process caller gets
// the serialized check-then-persist step the uniqueness invariant needs:
// generate, claim, and on ErrTaken regenerate against the updated scope.
// Multi-process callers must instead rely on an authoritative uniqueness
// constraint at the storage layer and retry on its violation signal.
type MemoryScope struct {
	slugs map[string]EntityRef
	mu    sync.RWMutex
}

// NewMemoryScope creates an empty in-memory scope.
func NewMemoryScope() *MemoryScope {
	return &MemoryScope{
		slugs: make(map[string]EntityRef),
	}
}

// Exists implements Checker.
func (s *MemoryScope) Exists(_ context.Context, candidate string) (EntityRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.slugs[candidate]
	return ref, ok, nil
}

// Claim assigns slug to ref. Claiming a slug held by a different entity
// returns ErrTaken; re-claiming one's own slug is a no-op.
func (s *MemoryScope) Claim(_ context.Context, slug string, ref EntityRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if holder, ok := s.slugs[slug]; ok && holder != ref {
		return ErrTaken
	}
	s.slugs[slug] = ref
	return nil
}

// Release frees a slug, e.g. after the owning entity is deleted or re-slugged.
func (s *MemoryScope) Release(_ context.Context, slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slugs, slug)
}

// Len returns the number of claimed slugs.
func (s *MemoryScope) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.slugs)
}
