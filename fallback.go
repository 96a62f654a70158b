package i18n

import "strings"

// localeDelimiter separates subtag segments in a locale identifier.
const localeDelimiter = "-"

// FallbackChain returns the fallback chain for a single locale, most
// specific first, built by progressively dropping the last subtag segment:
//
//	FallbackChain("az-Cyrl-AZ") == []string{"az-Cyrl-AZ", "az-Cyrl", "az"}
//
// Locales are treated as opaque delimiter-separated tokens; no syntax
// validation happens. An empty string yields a single-element chain holding
// the empty string.
func FallbackChain(locale string) []string {
	segments := strings.Split(locale, localeDelimiter)

	chain := make([]string, 0, len(segments))
	for i := len(segments); i > 0; i-- {
		chain = append(chain, strings.Join(segments[:i], localeDelimiter))
	}
	return chain
}

// PossibleLocales expands every candidate locale into its fallback chain,
// in the given order, deduplicated by first occurrence. When fallback is
// non-empty its chain is appended last, again skipping entries already
// present.
func PossibleLocales(locales []string, fallback string) []string {
	seen := make(map[string]struct{}, len(locales)*2)
	out := make([]string, 0, len(locales)*2)

	appendChain := func(locale string) {
		for _, entry := range FallbackChain(locale) {
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			out = append(out, entry)
		}
	}

	for _, locale := range locales {
		appendChain(locale)
	}

	if fallback != "" {
		appendChain(fallback)
	}

	return out
}
