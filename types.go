package i18n

import "context"

// Dictionary holds the translation messages for one locale. Values are
// either strings or nested Dictionary maps of arbitrary depth.
type Dictionary map[string]any

// Loader produces a partial Dictionary for a single locale. Loaders are
// registered per locale and executed lazily, at most once each, when that
// locale's queue flushes.
type Loader interface {
	Load(ctx context.Context) (Dictionary, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func(ctx context.Context) (Dictionary, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load(ctx context.Context) (Dictionary, error) {
	return fn(ctx)
}

// Clone returns a deep copy of the dictionary. Nested maps are copied
// recursively, leaf values are kept as-is.
func (d Dictionary) Clone() Dictionary {
	if d == nil {
		return nil
	}

	out := make(Dictionary, len(d))
	for key, value := range d {
		switch v := value.(type) {
		case Dictionary:
			out[key] = v.Clone()
		case map[string]any:
			out[key] = Dictionary(v).Clone()
		default:
			out[key] = value
		}
	}
	return out
}
