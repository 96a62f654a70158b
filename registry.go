package i18n

import "sync"

// loaderEntry tracks one registered loader. consumed flips false to true
// exactly once, when a flush claims the entry, and never reverts.
type loaderEntry struct {
	loader   Loader
	consumed bool
}

// LoaderRegistry keeps the ordered, append-only loader queue for each
// locale. Entries are never removed; registering a loader after a flush
// consumed the earlier ones adds a fresh entry for the next flush.
type LoaderRegistry struct {
	mu      sync.Mutex
	entries map[string][]*loaderEntry
}

// NewLoaderRegistry returns an empty registry.
func NewLoaderRegistry() *LoaderRegistry {
	return &LoaderRegistry{entries: make(map[string][]*loaderEntry)}
}

// Register appends loader to the locale's queue. Multiple loaders per locale
// are all kept, each contributing a partial dictionary on the next flush.
// Nil loaders are ignored.
func (r *LoaderRegistry) Register(locale string, loader Loader) {
	if r == nil || loader == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[locale] = append(r.entries[locale], &loaderEntry{loader: loader})
}

// HasQueue reports whether locale has at least one loader that has not been
// executed yet.
func (r *LoaderRegistry) HasQueue(locale string) bool {
	if r == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.entries[locale] {
		if !entry.consumed {
			return true
		}
	}
	return false
}

// takePending claims every unconsumed entry for locale and returns the
// loaders in registration order. Entries are marked consumed under the lock,
// before any loader runs, so overlapping flushes never execute an entry
// twice.
func (r *LoaderRegistry) takePending(locale string) []Loader {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pending []Loader
	for _, entry := range r.entries[locale] {
		if entry.consumed {
			continue
		}
		entry.consumed = true
		pending = append(pending, entry.loader)
	}
	return pending
}

// reset drops every registered entry.
func (r *LoaderRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string][]*loaderEntry)
}
