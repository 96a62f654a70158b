package i18n

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option mutates an Instance during construction
type Option func(*Instance) error

// WithFallbackLocale configures the locale appended to the end of every
// resolution chain. Empty disables the global fallback.
func WithFallbackLocale(locale string) Option {
	return func(i *Instance) error {
		i.fallback = locale
		return nil
	}
}

// WithLoadingDelay sets the debounce window for the loading flag on
// locale-to-locale switches. Zero restores DefaultLoadingDelay.
func WithLoadingDelay(delay time.Duration) Option {
	return func(i *Instance) error {
		if delay < 0 {
			return fmt.Errorf("i18n: negative loading delay %s", delay)
		}
		i.signal = newLoadingSignal(delay, i.notifyLoading)
		return nil
	}
}

// WithLogger attaches a zerolog logger; switch resolution, flush timing and
// commits log at debug level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Instance) error {
		i.log = logger
		return nil
	}
}

// WithLoaders registers loaders during construction, keyed by locale. Order
// within a locale follows the slice order.
func WithLoaders(locale string, loaders ...Loader) Option {
	return func(i *Instance) error {
		for _, loader := range loaders {
			i.registry.Register(locale, loader)
		}
		return nil
	}
}

// WithObserver subscribes an observer at construction time.
func WithObserver(observer Observer) Option {
	return func(i *Instance) error {
		if observer == nil {
			return nil
		}
		i.observers[i.nextObserver] = observer
		i.nextObserver++
		return nil
	}
}
