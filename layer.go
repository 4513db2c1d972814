// Package canvas implements the layer-store engine behind a pixel-grid
// painting surface: per-cell stores that compose stacked color effects
// under one of three draw styles, a grid that owns one store per cell,
// and history trackers that undo, redo, and replay recorded paint
// actions deterministically.
//
// The color math of individual effects stays outside the engine: a
// layer is an opaque transform registered once and applied by index.
// Callers serialize access; nothing here is safe for concurrent use.
package canvas

import "fmt"

// ApplyFunc transforms a color for the cell at (x, y) at the given
// timestamp. Implementations must be pure: same inputs, same output.
type ApplyFunc func(start Color, timestamp int64, x, y int) Color

// Layer is a named, indexed color transform. Layers are immutable after
// registration and identified by Index, not by content.
type Layer struct {
	Index int
	Name  string

	fn ApplyFunc
}

// Apply runs the layer's transform. A zero Layer passes the color
// through unchanged.
func (l Layer) Apply(start Color, timestamp int64, x, y int) Color {
	if l.fn == nil {
		return start
	}
	return l.fn(start, timestamp, x, y)
}

// IsZero reports whether the layer was never registered.
func (l Layer) IsZero() bool {
	return l.fn == nil && l.Name == ""
}

// Registry holds the ordered set of registered layers. Registration
// happens once at setup; afterwards the registry is read-only and is
// shared by every store that needs to resolve layers by index.
type Registry struct {
	layers []Layer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a layer under the next free index and returns it.
func (r *Registry) Register(name string, fn ApplyFunc) (Layer, error) {
	if name == "" {
		return Layer{}, fmt.Errorf("canvas: layer name must not be empty")
	}
	if fn == nil {
		return Layer{}, fmt.Errorf("canvas: layer %q apply func is nil", name)
	}
	layer := Layer{Index: len(r.layers), Name: name, fn: fn}
	r.layers = append(r.layers, layer)
	return layer, nil
}

// MustRegister is Register that panics on error, for setup code.
func (r *Registry) MustRegister(name string, fn ApplyFunc) Layer {
	layer, err := r.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return layer
}

// Layer returns the layer registered at index.
func (r *Registry) Layer(index int) (Layer, bool) {
	if r == nil || index < 0 || index >= len(r.layers) {
		return Layer{}, false
	}
	return r.layers[index], true
}

// Layers returns a copy of the registered layers in index order.
func (r *Registry) Layers() []Layer {
	if r == nil || len(r.layers) == 0 {
		return nil
	}
	out := make([]Layer, len(r.layers))
	copy(out, r.layers)
	return out
}

// Len returns the number of registered layers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.layers)
}
