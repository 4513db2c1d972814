package palette

import (
	"testing"

	canvas "github.com/goliatone/go-canvas"
)

func TestNewRegistryOrder(t *testing.T) {
	registry := NewRegistry()
	want := []string{Black, Lighten, Rainbow, Darken, Invert}
	layers := registry.Layers()
	if len(layers) != len(want) {
		t.Fatalf("registered %d layers, want %d", len(layers), len(want))
	}
	for i, name := range want {
		if layers[i].Name != name || layers[i].Index != i {
			t.Fatalf("layer %d = %q/%d, want %q/%d", i, layers[i].Name, layers[i].Index, name, i)
		}
	}
}

func TestStockEffects(t *testing.T) {
	registry := NewRegistry()
	byName := map[string]canvas.Layer{}
	for _, layer := range registry.Layers() {
		byName[layer.Name] = layer
	}

	start := canvas.RGB(100, 150, 250)
	if got := byName[Black].Apply(start, 0, 0, 0); got != (canvas.Color{}) {
		t.Fatalf("black = %+v, want zero color", got)
	}
	if got := byName[Lighten].Apply(start, 0, 0, 0); got != canvas.RGB(140, 190, 255) {
		t.Fatalf("lighten = %+v, want clamped +40", got)
	}
	if got := byName[Darken].Apply(canvas.RGB(30, 100, 0), 0, 0, 0); got != canvas.RGB(0, 60, 0) {
		t.Fatalf("darken = %+v, want clamped -40", got)
	}
	if got := byName[Invert].Apply(start, 0, 0, 0); got != start.Invert() {
		t.Fatalf("invert = %+v, want %+v", got, start.Invert())
	}
}

func TestRainbowIsDeterministic(t *testing.T) {
	registry := NewRegistry()
	layer, ok := registry.Layer(2)
	if !ok || layer.Name != Rainbow {
		t.Fatalf("layer 2 = %+v, want rainbow", layer)
	}

	first := layer.Apply(canvas.Color{}, 42, 3, 4)
	second := layer.Apply(canvas.Color{}, 42, 3, 4)
	if first != second {
		t.Fatalf("rainbow diverged for identical inputs: %+v then %+v", first, second)
	}
	shifted := layer.Apply(canvas.Color{}, 43, 3, 4)
	if shifted == first {
		t.Fatalf("rainbow did not advance with the timestamp")
	}
}
