package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader returns a Loader that reads one dictionary file when the
// locale's queue flushes. JSON and YAML files are supported, picked by
// extension. The file is read lazily, at flush time, not at registration.
func FileLoader(path string) Loader {
	return LoaderFunc(func(_ context.Context) (Dictionary, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		dict, err := decodeDictionary(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}
		return dict, nil
	})
}

// StaticLoader returns a Loader that yields a fixed dictionary. Handy for
// inline or generated message tables.
func StaticLoader(dict Dictionary) Loader {
	return LoaderFunc(func(_ context.Context) (Dictionary, error) {
		return dict, nil
	})
}

func decodeDictionary(path string, data []byte) (Dictionary, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	return normalizeDictionary(raw), nil
}

// normalizeDictionary coerces decoded values into the Dictionary shape:
// nested maps recurse, strings pass through, other scalars render through
// fmt. Nil values become empty strings.
func normalizeDictionary(raw map[string]any) Dictionary {
	dict := make(Dictionary, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case map[string]any:
			dict[key] = normalizeDictionary(v)
		case string:
			dict[key] = v
		case nil:
			dict[key] = ""
		default:
			dict[key] = fmt.Sprint(v)
		}
	}
	return dict
}
