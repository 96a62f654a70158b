package i18n

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Instance owns the loader registry, dictionary store, loading signal and
// current-locale state for one runtime. Instances created by New share
// nothing, so tests and embedded uses can run several side by side.
type Instance struct {
	registry *LoaderRegistry
	store    *DictionaryStore
	queue    *LoaderQueue
	signal   *loadingSignal
	log      zerolog.Logger

	mu           sync.Mutex
	fallback     string
	current      string
	observers    map[int]Observer
	nextObserver int
}

// New builds an Instance applying the supplied options.
func New(opts ...Option) (*Instance, error) {
	registry := NewLoaderRegistry()
	store := NewDictionaryStore()

	inst := &Instance{
		registry:  registry,
		store:     store,
		queue:     newLoaderQueue(registry, store),
		log:       zerolog.Nop(),
		observers: make(map[int]Observer),
	}
	inst.signal = newLoadingSignal(DefaultLoadingDelay, inst.notifyLoading)

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(inst); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

// Register appends loader to the locale's pending queue. Multiple loaders
// per locale each contribute a partial dictionary on the next flush, which
// supports split translation files. Registering is valid at any time,
// including after the locale already flushed; the new entry is picked up by
// the next switch or Preload.
func (i *Instance) Register(locale string, loader Loader) {
	i.registry.Register(locale, loader)
}

// HasQueue reports whether locale has registered loaders that have not run
// yet. Diagnostic surface.
func (i *Instance) HasQueue(locale string) bool {
	return i.registry.HasQueue(locale)
}

// PossibleLocales expands each candidate into its fallback chain, deduped by
// first occurrence, with the instance fallback locale appended last.
func (i *Instance) PossibleLocales(locales ...string) []string {
	i.mu.Lock()
	fallback := i.fallback
	i.mu.Unlock()

	return PossibleLocales(locales, fallback)
}

// SwitchLocale resolves the candidates against registered loaders and loaded
// dictionaries, flushes the winning locale's queue and commits it as the
// current locale once the flush settles. It blocks until then.
//
// The winner is the first chain entry that has pending loaders or an already
// loaded dictionary. No winner is not an error: the current locale commits
// as empty. A loader failure surfaces as the returned error and nothing
// commits; already claimed loader entries are not retried.
//
// Overlapping calls each run their own resolve/flush cycle; whichever flush
// settles last commits last and wins, regardless of call order.
func (i *Instance) SwitchLocale(ctx context.Context, locales ...string) (string, error) {
	chain := i.PossibleLocales(locales...)

	winner := ""
	for _, candidate := range chain {
		if i.registry.HasQueue(candidate) || i.store.Has(candidate) {
			winner = candidate
			break
		}
	}

	if winner == "" {
		i.log.Debug().Strs("candidates", locales).Msg("no locale resolved")
		i.commit("")
		return "", nil
	}

	i.mu.Lock()
	firstSwitch := i.current == ""
	i.mu.Unlock()

	i.log.Debug().Str("locale", winner).Strs("chain", chain).Msg("locale resolved")

	settle := i.signal.begin(firstSwitch)
	started := time.Now()
	err := i.queue.Flush(ctx, winner)
	settle()

	if err != nil {
		i.log.Debug().Err(err).Str("locale", winner).Msg("flush failed")
		return "", err
	}

	i.log.Debug().Str("locale", winner).Dur("took", time.Since(started)).Msg("locale committed")
	i.commit(winner)
	return winner, nil
}

// Preload flushes the pending loaders for locale without touching the
// current locale or the loading flag. Useful to warm dictionaries ahead of a
// switch.
func (i *Instance) Preload(ctx context.Context, locale string) error {
	return i.queue.Flush(ctx, locale)
}

// CurrentLocale returns the committed locale, empty until the first
// successful switch.
func (i *Instance) CurrentLocale() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current
}

// Loading reports whether a switch is in flight past the debounce window.
func (i *Instance) Loading() bool {
	return i.signal.loading()
}

// Lookup resolves a dot-separated key within locale's loaded dictionary.
func (i *Instance) Lookup(key, locale string) (string, bool) {
	return i.store.Lookup(key, locale)
}

// Dictionary returns a deep copy of the merged dictionary for locale.
func (i *Instance) Dictionary(locale string) (Dictionary, bool) {
	return i.store.Dictionary(locale)
}

// Locales returns every locale with loaded content.
func (i *Instance) Locales() []string {
	return i.store.Locales()
}

// SetFallback replaces the instance fallback locale.
func (i *Instance) SetFallback(locale string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.fallback = locale
}

// Fallback returns the configured fallback locale.
func (i *Instance) Fallback() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.fallback
}

// Subscribe registers an observer and returns its unsubscribe func.
// Observers see every commit and every loading transition that happens after
// subscription.
func (i *Instance) Subscribe(observer Observer) (unsubscribe func()) {
	if observer == nil {
		return func() {}
	}

	i.mu.Lock()
	id := i.nextObserver
	i.nextObserver++
	i.observers[id] = observer
	i.mu.Unlock()

	return func() {
		i.mu.Lock()
		delete(i.observers, id)
		i.mu.Unlock()
	}
}

// Reset drops registered loaders, loaded dictionaries, in-flight bookkeeping
// and the current locale, returning the instance to its initial state while
// keeping configuration (fallback, delay, logger, observers). Meant for test
// isolation.
func (i *Instance) Reset() {
	i.registry.reset()
	i.queue.reset()
	i.store.Clear()

	i.mu.Lock()
	i.current = ""
	i.mu.Unlock()
}

// commit stores the new current locale and fans out to observers.
func (i *Instance) commit(locale string) {
	i.mu.Lock()
	i.current = locale
	observers := i.snapshotObservers()
	i.mu.Unlock()

	for _, observer := range observers {
		observer.LocaleChanged(locale)
	}
}

func (i *Instance) notifyLoading(loading bool) {
	i.mu.Lock()
	observers := i.snapshotObservers()
	i.mu.Unlock()

	for _, observer := range observers {
		observer.LoadingChanged(loading)
	}
}

// snapshotObservers copies the observer set. Callers hold mu.
func (i *Instance) snapshotObservers() []Observer {
	if len(i.observers) == 0 {
		return nil
	}
	out := make([]Observer, 0, len(i.observers))
	for _, observer := range i.observers {
		out = append(out, observer)
	}
	return out
}
