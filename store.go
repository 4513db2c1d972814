package canvas

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDrawStyle reports a draw style outside the supported set.
var ErrUnknownDrawStyle = errors.New("canvas: unknown draw style")

// DrawStyle selects the LayerStore variant used by every cell of a grid.
// The style is fixed at grid construction; the variant set is closed.
type DrawStyle string

const (
	// DrawStyleSet keeps a single active layer plus an invert toggle.
	DrawStyleSet DrawStyle = "SET"
	// DrawStyleAdd queues layers and composes them oldest first.
	DrawStyleAdd DrawStyle = "ADD"
	// DrawStyleSequence toggles layers on/off and composes by index.
	DrawStyleSequence DrawStyle = "SEQUENCE"
)

// ParseDrawStyle converts a case-insensitive style name into a DrawStyle.
func ParseDrawStyle(name string) (DrawStyle, error) {
	switch DrawStyle(strings.ToUpper(strings.TrimSpace(name))) {
	case DrawStyleSet:
		return DrawStyleSet, nil
	case DrawStyleAdd:
		return DrawStyleAdd, nil
	case DrawStyleSequence:
		return DrawStyleSequence, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDrawStyle, name)
	}
}

// LayerStore combines zero or more layers into one output color under a
// fixed composition policy. One store backs one grid cell.
type LayerStore interface {
	// Add records a layer in the store. It reports whether the store
	// actually changed; full or duplicate stores report false.
	Add(layer Layer) bool

	// Erase removes a layer according to the variant's policy. It
	// reports whether the store actually changed.
	Erase(layer Layer) bool

	// GetColor resolves the color the cell shows, starting from start.
	// The store's contents are unchanged afterwards.
	GetColor(start Color, timestamp int64, x, y int) Color

	// Special applies the variant-specific parameterless mutation.
	Special()
}

// newLayerStore builds the store variant for style, sharing registry
// with every store of the grid.
func newLayerStore(style DrawStyle, registry *Registry) (LayerStore, error) {
	switch style {
	case DrawStyleSet:
		return newSetLayerStore(), nil
	case DrawStyleAdd:
		return newAdditiveLayerStore(registry), nil
	case DrawStyleSequence:
		return newSequenceLayerStore(registry), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDrawStyle, style)
	}
}
