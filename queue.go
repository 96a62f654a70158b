package i18n

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// flight tracks one in-progress flush so overlapping callers for the same
// locale can await its outcome instead of re-running loaders.
type flight struct {
	done chan struct{}
	err  error
}

// LoaderQueue executes pending loaders for a locale and merges their output
// into the dictionary store.
type LoaderQueue struct {
	registry *LoaderRegistry
	store    *DictionaryStore

	mu       sync.Mutex
	inflight map[string]*flight
}

func newLoaderQueue(registry *LoaderRegistry, store *DictionaryStore) *LoaderQueue {
	return &LoaderQueue{
		registry: registry,
		store:    store,
		inflight: make(map[string]*flight),
	}
}

// Flush claims every pending loader for locale, runs them concurrently,
// awaits all, and merges the resulting dictionaries into the store in
// registration order, later registrations winning per top-level key.
//
// A call that finds nothing pending awaits the newest in-flight flush for
// the locale, if any, and reports its outcome; otherwise it returns nil
// immediately without touching the store. Any loader failure fails the whole
// flush and nothing is merged; claimed entries stay consumed and are not
// retried.
func (q *LoaderQueue) Flush(ctx context.Context, locale string) error {
	q.mu.Lock()
	pending := q.registry.takePending(locale)
	if len(pending) == 0 {
		fl := q.inflight[locale]
		q.mu.Unlock()

		if fl == nil {
			return nil
		}
		select {
		case <-fl.done:
			return fl.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	fl := &flight{done: make(chan struct{})}
	q.inflight[locale] = fl
	q.mu.Unlock()

	fl.err = q.run(ctx, locale, pending)
	close(fl.done)

	q.mu.Lock()
	if q.inflight[locale] == fl {
		delete(q.inflight, locale)
	}
	q.mu.Unlock()

	return fl.err
}

// run executes the claimed loaders concurrently and applies merges only once
// every loader settled, keeping conflict resolution deterministic regardless
// of completion order.
func (q *LoaderQueue) run(ctx context.Context, locale string, loaders []Loader) error {
	results := make([]Dictionary, len(loaders))

	g, ctx := errgroup.WithContext(ctx)
	for idx, loader := range loaders {
		g.Go(func() error {
			dict, err := loader.Load(ctx)
			if err != nil {
				return fmt.Errorf("i18n: load %q: %w", locale, err)
			}
			results[idx] = dict
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	q.store.mergeAll(locale, results)
	return nil
}

// reset forgets in-flight bookkeeping. Flushes already running finish
// against the store they were started with.
func (q *LoaderQueue) reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.inflight = make(map[string]*flight)
}
