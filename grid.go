package canvas

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions reports non-positive grid dimensions.
var ErrInvalidDimensions = errors.New("canvas: grid dimensions must be positive")

// Brush size bounds shared by every grid.
const (
	DefaultBrushSize = 2
	MinBrushSize     = 0
	MaxBrushSize     = 5
)

// Grid owns a fixed-size 2D array of layer stores, one per cell, all of
// the draw style chosen at construction, plus a shared brush size.
type Grid struct {
	style     DrawStyle
	width     int
	height    int
	brushSize int
	cells     [][]LayerStore
	registry  *Registry
}

// GridOption configures optional grid behaviour.
type GridOption func(*Grid)

// WithBrushSize sets the starting brush size, clamped to the allowed
// range.
func WithBrushSize(size int) GridOption {
	return func(g *Grid) {
		if size < MinBrushSize {
			size = MinBrushSize
		}
		if size > MaxBrushSize {
			size = MaxBrushSize
		}
		g.brushSize = size
	}
}

// NewGrid builds a width×height grid whose cells all use the given draw
// style. The registry is shared read-only by every store; additive and
// sequence stores size themselves from it. An unrecognized style or
// non-positive dimension fails construction.
func NewGrid(style DrawStyle, width, height int, registry *Registry, opts ...GridOption) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if registry == nil {
		registry = NewRegistry()
	}

	g := &Grid{
		style:     style,
		width:     width,
		height:    height,
		brushSize: DefaultBrushSize,
		registry:  registry,
	}

	g.cells = make([][]LayerStore, width)
	for x := 0; x < width; x++ {
		g.cells[x] = make([]LayerStore, height)
		for y := 0; y < height; y++ {
			store, err := newLayerStore(style, registry)
			if err != nil {
				return nil, err
			}
			g.cells[x][y] = store
		}
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// Cell returns the layer store at (x, y), or nil when out of bounds.
func (g *Grid) Cell(x, y int) LayerStore {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return g.cells[x][y]
}

// Style returns the draw style every cell was built with.
func (g *Grid) Style() DrawStyle {
	return g.style
}

// Width returns the horizontal cell count.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the vertical cell count.
func (g *Grid) Height() int {
	return g.height
}

// BrushSize returns the current shared brush size.
func (g *Grid) BrushSize() int {
	return g.brushSize
}

// IncreaseBrushSize grows the brush by one. It reports false at the
// upper bound, where the call is a no-op.
func (g *Grid) IncreaseBrushSize() bool {
	if g.brushSize >= MaxBrushSize {
		return false
	}
	g.brushSize++
	return true
}

// DecreaseBrushSize shrinks the brush by one. It reports false at the
// lower bound, where the call is a no-op.
func (g *Grid) DecreaseBrushSize() bool {
	if g.brushSize <= MinBrushSize {
		return false
	}
	g.brushSize--
	return true
}

// Special broadcasts the variant-specific special effect to every cell.
func (g *Grid) Special() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.cells[x][y].Special()
		}
	}
}
