package i18n

import (
	"fmt"
	"sort"
	"sync"
)

// Store exposes the translation trees the resolution pipeline reads from.
// Lookup must be safe for concurrent use; Add may run concurrently with
// Lookup but implementations serialize writes internally.
type Store interface {
	// Lookup walks path inside the locale tree and returns the value found
	// there, ok=false on a miss. Returned subtrees are shared with the
	// store and must be treated as read-only.
	Lookup(locale string, path ...string) (any, bool)
	// Add deep-merges data into the locale tree: nested maps merge
	// key-by-key, leaf values overwrite.
	Add(locale string, data map[string]any) error
	// Locales returns every locale with stored translations, sorted.
	Locales() []string
}

// MemoryStore keeps translation trees in memory, guarded by a RWMutex so
// resolution can run in parallel with occasional merges.
type MemoryStore struct {
	mu    sync.RWMutex
	trees map[string]map[string]any
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trees: make(map[string]map[string]any)}
}

// NewMemoryStoreFromLoader hydrates a store with everything the loader yields.
func NewMemoryStoreFromLoader(loader Loader) (*MemoryStore, error) {
	store := NewMemoryStore()
	if loader == nil {
		return store, nil
	}

	translations, err := loader.Load()
	if err != nil {
		return nil, err
	}

	for locale, tree := range translations {
		if err := store.Add(locale, tree); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Add deep-merges data into the tree for locale.
func (s *MemoryStore) Add(locale string, data map[string]any) error {
	code := normalizeLocale(locale)
	if code == "" {
		return fmt.Errorf("i18n: cannot store translations for an empty locale")
	}
	if len(data) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.trees[code]
	if !ok {
		tree = make(map[string]any, len(data))
		s.trees[code] = tree
	}
	mergeTree(tree, data)
	return nil
}

// Lookup walks path inside the locale tree.
func (s *MemoryStore) Lookup(locale string, path ...string) (any, bool) {
	if s == nil || len(path) == 0 {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tree, ok := s.trees[normalizeLocale(locale)]
	if !ok {
		return nil, false
	}

	var node any = tree
	for _, segment := range path {
		branch, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = branch[segment]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// Locales returns a sorted slice with all locale codes known to the store.
func (s *MemoryStore) Locales() []string {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.trees) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.trees))
	for code := range s.trees {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// mergeTree merges src into dst. Incoming branches are copied so later
// mutations of the payload never leak into the store.
func mergeTree(dst, src map[string]any) {
	for key, value := range src {
		if branch, ok := value.(map[string]any); ok {
			existing, ok := dst[key].(map[string]any)
			if !ok {
				existing = make(map[string]any, len(branch))
				dst[key] = existing
			}
			mergeTree(existing, branch)
			continue
		}
		dst[key] = value
	}
}
