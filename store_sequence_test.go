package canvas

import "testing"

func namedRegistry(t *testing.T, names ...string) (*Registry, map[string]Layer) {
	t.Helper()
	registry := NewRegistry()
	layers := map[string]Layer{}
	for _, name := range names {
		layers[name] = registry.MustRegister(name, func(start Color, _ int64, _, _ int) Color {
			return Color{R: start.R + 1, G: start.G, B: start.B}
		})
	}
	return registry, layers
}

func TestSequenceStoreToggleSemantics(t *testing.T) {
	registry, layers := namedRegistry(t, "alpha", "beta")
	store := newSequenceLayerStore(registry)

	if !store.Add(layers["alpha"]) {
		t.Fatalf("first add reported no change")
	}
	if store.Add(layers["alpha"]) {
		t.Fatalf("re-adding an applied layer reported a change")
	}
	if !store.Erase(layers["alpha"]) {
		t.Fatalf("erasing an applied layer reported no change")
	}
	if store.Erase(layers["alpha"]) {
		t.Fatalf("erasing a non-applied layer reported a change")
	}
}

func TestSequenceStoreComposesByIndexOrder(t *testing.T) {
	registry := NewRegistry()
	first := registry.MustRegister("first", func(start Color, _ int64, _, _ int) Color {
		return Color{R: 100}
	})
	second := registry.MustRegister("second", func(start Color, _ int64, _, _ int) Color {
		return Color{R: start.R / 2}
	})
	store := newSequenceLayerStore(registry)

	// Insertion order is second, first; composition still runs in
	// index order: first then second.
	store.Add(second)
	store.Add(first)
	got := store.GetColor(Color{R: 8}, 0, 0, 0)
	if got != (Color{R: 50}) {
		t.Fatalf("color = %+v, want index-ordered composition {R:50}", got)
	}
}

func TestSequenceStoreSpecialErasesNameMedian(t *testing.T) {
	registry, layers := namedRegistry(t, "gamma", "alpha", "beta")
	store := newSequenceLayerStore(registry)
	for _, name := range []string{"alpha", "beta", "gamma"} {
		store.Add(layers[name])
	}

	// Applied names {alpha, beta, gamma}: the median is beta.
	store.Special()
	if store.Erase(layers["beta"]) {
		t.Fatalf("beta still applied after special")
	}
	if !store.Erase(layers["alpha"]) || !store.Erase(layers["gamma"]) {
		t.Fatalf("special removed more than the median layer")
	}
}

func TestSequenceStoreSpecialEvenCountPicksLowerMiddle(t *testing.T) {
	registry, layers := namedRegistry(t, "delta", "alpha", "charlie", "bravo")
	store := newSequenceLayerStore(registry)
	for _, layer := range layers {
		store.Add(layer)
	}

	// Name-sorted: alpha bravo charlie delta. Lower-middle is bravo.
	store.Special()
	if store.Erase(layers["bravo"]) {
		t.Fatalf("bravo still applied after even-count special")
	}
	if store.AppliedCount() != 3 {
		t.Fatalf("applied count = %d after special, want 3", store.AppliedCount())
	}
}

func TestSequenceStoreSpecialDrainsOnePerCall(t *testing.T) {
	registry, layers := namedRegistry(t, "alpha", "beta", "gamma")
	store := newSequenceLayerStore(registry)
	for _, layer := range layers {
		store.Add(layer)
	}

	for want := 2; want >= 0; want-- {
		store.Special()
		if got := store.AppliedCount(); got != want {
			t.Fatalf("applied count = %d after special, want %d", got, want)
		}
	}
	// Empty store: special is a no-op.
	store.Special()
	if store.AppliedCount() != 0 {
		t.Fatalf("special on empty store changed state")
	}
}

func TestSequenceStoreRejectsUnregisteredIndex(t *testing.T) {
	registry, _ := namedRegistry(t, "alpha")
	store := newSequenceLayerStore(registry)
	rogue := Layer{Index: 9, Name: "rogue"}
	if store.Add(rogue) {
		t.Fatalf("add accepted a layer outside the registry")
	}
	if store.Erase(rogue) {
		t.Fatalf("erase accepted a layer outside the registry")
	}
}
