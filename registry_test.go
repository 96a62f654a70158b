package i18n

import "testing"

func TestLoaderRegistryHasQueue(t *testing.T) {
	registry := NewLoaderRegistry()

	if registry.HasQueue("en") {
		t.Fatal("empty registry reported a queue")
	}

	registry.Register("en", StaticLoader(Dictionary{"title": "Welcome"}))
	if !registry.HasQueue("en") {
		t.Fatal("expected queue for en")
	}
	if registry.HasQueue("es") {
		t.Fatal("unexpected queue for es")
	}
}

func TestLoaderRegistryTakePending(t *testing.T) {
	registry := NewLoaderRegistry()
	registry.Register("en", StaticLoader(Dictionary{"a": "1"}))
	registry.Register("en", StaticLoader(Dictionary{"b": "2"}))

	pending := registry.takePending("en")
	if len(pending) != 2 {
		t.Fatalf("takePending returned %d loaders", len(pending))
	}
	if registry.HasQueue("en") {
		t.Fatal("entries should be consumed after takePending")
	}
	if again := registry.takePending("en"); len(again) != 0 {
		t.Fatalf("second takePending returned %d loaders", len(again))
	}
}

func TestLoaderRegistryReRegisterAfterConsume(t *testing.T) {
	registry := NewLoaderRegistry()
	registry.Register("en", StaticLoader(Dictionary{"a": "1"}))
	registry.takePending("en")

	registry.Register("en", StaticLoader(Dictionary{"b": "2"}))
	if !registry.HasQueue("en") {
		t.Fatal("re-registration should queue a fresh entry")
	}
	if pending := registry.takePending("en"); len(pending) != 1 {
		t.Fatalf("expected 1 fresh loader, got %d", len(pending))
	}
}

func TestLoaderRegistryNilLoaderIgnored(t *testing.T) {
	registry := NewLoaderRegistry()
	registry.Register("en", nil)

	if registry.HasQueue("en") {
		t.Fatal("nil loader should not create a queue")
	}
}
