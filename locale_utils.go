package i18n

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps header size so oversized Accept-Language
// values are ignored outright.
const maxAcceptLanguageLength = 4096

// NormalizeLocale maps a locale identifier to its canonical hyphenated form:
// whitespace trimmed, underscores replaced with hyphens, and BCP 47 casing
// applied when the tag parses. Unparseable tags keep the hyphenated form,
// locale syntax is not validated.
func NormalizeLocale(locale string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if normalized == "" {
		return ""
	}

	if tag, err := language.Parse(normalized); err == nil {
		if value := tag.String(); value != "" && value != "und" {
			return value
		}
	}
	return normalized
}

// languageTag is one parsed Accept-Language entry with its quality value.
type languageTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage parses an Accept-Language header into an ordered
// candidate list, highest quality first, suitable for SwitchLocale. Wildcard
// entries and q=0 entries are dropped; ties keep header order.
//
//	ParseAcceptLanguage("en-US,en;q=0.9,pl;q=0.8") == []string{"en-US", "en", "pl"}
func ParseAcceptLanguage(header string) []string {
	if header == "" || len(header) > maxAcceptLanguageLength {
		return nil
	}

	parts := strings.Split(header, ",")
	tags := make([]languageTag, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}

		tag, quality := parseAcceptEntry(entry)
		if tag == "" || tag == "*" || quality <= 0 {
			continue
		}

		normalized := NormalizeLocale(tag)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		tags = append(tags, languageTag{tag: normalized, quality: quality})
	}

	if len(tags) == 0 {
		return nil
	}

	sort.SliceStable(tags, func(a, b int) bool {
		return tags[a].quality > tags[b].quality
	})

	out := make([]string, len(tags))
	for idx, tag := range tags {
		out[idx] = tag.tag
	}
	return out
}

// parseAcceptEntry splits one header entry into its tag and quality value.
// Missing or malformed q parameters default to 1.
func parseAcceptEntry(entry string) (string, float64) {
	tag, params, found := strings.Cut(entry, ";")
	tag = strings.TrimSpace(tag)
	if !found {
		return tag, 1
	}

	quality := 1.0
	for _, param := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "q") {
			continue
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return tag, 1
		}
		quality = parsed
	}

	return tag, quality
}
