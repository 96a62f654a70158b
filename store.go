package i18n

import (
	"sort"
	"strings"
	"sync"
)

// DictionaryStore holds the merged dictionary for every locale that has
// flushed at least once. Writes come from LoaderQueue flushes; entries stick
// around until an explicit Clear.
type DictionaryStore struct {
	mu    sync.RWMutex
	dicts map[string]Dictionary
}

// NewDictionaryStore returns an empty store.
func NewDictionaryStore() *DictionaryStore {
	return &DictionaryStore{dicts: make(map[string]Dictionary)}
}

// Has reports whether locale has loaded content.
func (s *DictionaryStore) Has(locale string) bool {
	if s == nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dicts[locale]
	return ok
}

// Dictionary returns a snapshot of the merged dictionary for locale. The
// copy is deep, mutating it never leaks back into the store.
func (s *DictionaryStore) Dictionary(locale string) (Dictionary, bool) {
	if s == nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	dict, ok := s.dicts[locale]
	if !ok {
		return nil, false
	}
	return dict.Clone(), true
}

// Lookup resolves key within locale's dictionary by walking dot separated
// path segments through nested maps. Only string leaves resolve; a path that
// ends on a nested dictionary, or strays off the tree, reports ok=false.
func (s *DictionaryStore) Lookup(key, locale string) (string, bool) {
	if s == nil {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dict, ok := s.dicts[locale]
	if !ok {
		return "", false
	}

	segments := strings.Split(key, ".")
	for i, segment := range segments {
		value, ok := dict[segment]
		if !ok {
			return "", false
		}

		if i == len(segments)-1 {
			str, ok := value.(string)
			return str, ok
		}

		switch v := value.(type) {
		case Dictionary:
			dict = v
		case map[string]any:
			dict = Dictionary(v)
		default:
			return "", false
		}
	}

	return "", false
}

// Locales returns a sorted slice with every loaded locale code.
func (s *DictionaryStore) Locales() []string {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.dicts) == 0 {
		return nil
	}

	out := make([]string, 0, len(s.dicts))
	for locale := range s.dicts {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Clear drops every loaded dictionary. Meant for test isolation.
func (s *DictionaryStore) Clear() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dicts = make(map[string]Dictionary)
}

// mergeAll shallow-merges each partial dictionary into the locale's entry,
// in order, later parts winning per top-level key. An empty parts slice
// still creates the locale entry so the locale counts as loaded.
func (s *DictionaryStore) mergeAll(locale string, parts []Dictionary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dict, ok := s.dicts[locale]
	if !ok {
		dict = make(Dictionary)
		s.dicts[locale] = dict
	}

	for _, part := range parts {
		for key, value := range part {
			dict[key] = value
		}
	}
}
