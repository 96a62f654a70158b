package i18n

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderYAML(t *testing.T) {
	path := writeFile(t, "en.yaml", `
title: Welcome
nav:
  home: Home
  depth: 3
`)

	dict, err := FileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	store := NewDictionaryStore()
	store.mergeAll("en", []Dictionary{dict})

	if got, _ := store.Lookup("title", "en"); got != "Welcome" {
		t.Fatalf("title = %q", got)
	}
	if got, _ := store.Lookup("nav.home", "en"); got != "Home" {
		t.Fatalf("nav.home = %q", got)
	}

	// Non-string scalars are rendered as strings.
	if got, _ := store.Lookup("nav.depth", "en"); got != "3" {
		t.Fatalf("nav.depth = %q", got)
	}
}

func TestFileLoaderJSON(t *testing.T) {
	path := writeFile(t, "es.json", `{"title": "Bienvenido", "nav": {"home": "Inicio"}}`)

	dict, err := FileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	nav, ok := dict["nav"].(Dictionary)
	if !ok {
		t.Fatalf("nav decoded as %T", dict["nav"])
	}
	if nav["home"] != "Inicio" {
		t.Fatalf("nav.home = %v", nav["home"])
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "en.toml", `title = "Welcome"`)

	_, err := FileLoader(path).Load(context.Background())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	_, err := FileLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFileLoaderIsLazy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.yaml")

	// The file does not exist yet at registration time; only the flush
	// should read it.
	inst, _ := New()
	inst.Register("en", FileLoader(path))

	if err := os.WriteFile(path, []byte("title: Welcome"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := inst.SwitchLocale(context.Background(), "en"); err != nil {
		t.Fatalf("SwitchLocale: %v", err)
	}
	if got, _ := inst.Lookup("title", "en"); got != "Welcome" {
		t.Fatalf("title = %q", got)
	}
}
