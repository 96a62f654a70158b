// Command i18n-chains prints the fallback resolution for candidate locales
// and optionally verifies dictionary files decode cleanly.
//
// Usage:
//
//	i18n-chains -fallback pt en-US az-Cyrl-AZ
//	i18n-chains -check locales/en.yaml -check locales/es.json en es
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	i18n "github.com/goliatone/go-i18n-runtime"
)

type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var (
		fallback string
		accept   string
		checks   fileList
	)

	flag.StringVar(&fallback, "fallback", "", "global fallback locale appended to every chain")
	flag.StringVar(&accept, "accept", "", "parse candidates from an Accept-Language header value")
	flag.Var(&checks, "check", "dictionary file to decode and summarize (repeatable)")
	flag.Parse()

	candidates := flag.Args()
	if accept != "" {
		candidates = append(i18n.ParseAcceptLanguage(accept), candidates...)
	}

	if len(candidates) == 0 && len(checks) == 0 {
		fmt.Fprintln(os.Stderr, "usage: i18n-chains [-fallback locale] [-accept header] [-check file]... [locale]...")
		os.Exit(2)
	}

	if len(candidates) > 0 {
		for _, locale := range candidates {
			fmt.Printf("%-16s %s\n", locale, strings.Join(i18n.FallbackChain(locale), " > "))
		}
		resolved := i18n.PossibleLocales(candidates, fallback)
		fmt.Printf("resolved         %s\n", strings.Join(resolved, ", "))
	}

	for _, path := range checks {
		dict, err := i18n.FileLoader(path).Load(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok, %d keys\n", path, countKeys(dict))
	}
}

func countKeys(dict i18n.Dictionary) int {
	total := 0
	for _, value := range dict {
		switch v := value.(type) {
		case i18n.Dictionary:
			total += countKeys(v)
		case map[string]any:
			total += countKeys(i18n.Dictionary(v))
		default:
			total++
		}
	}
	return total
}
