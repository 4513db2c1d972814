package canvas

// SetLayerStore keeps at most one active layer together with an
// independent invert toggle. Every operation is O(1).
type SetLayerStore struct {
	current  *Layer
	inverted bool
}

func newSetLayerStore() *SetLayerStore {
	return &SetLayerStore{}
}

// Add replaces the active layer. It reports false only when layer is
// already the active one.
func (s *SetLayerStore) Add(layer Layer) bool {
	if s.current != nil && s.current.Index == layer.Index && s.current.Name == layer.Name {
		return false
	}
	stored := layer
	s.current = &stored
	return true
}

// Erase clears the active layer regardless of which layer is passed.
// It reports false when the store was already empty.
func (s *SetLayerStore) Erase(Layer) bool {
	if s.current == nil {
		return false
	}
	s.current = nil
	return true
}

// GetColor applies the active layer, if any, then the invert transform
// when the special toggle is on.
func (s *SetLayerStore) GetColor(start Color, timestamp int64, x, y int) Color {
	color := start
	if s.current != nil {
		color = s.current.Apply(start, timestamp, x, y)
	}
	if s.inverted {
		color = color.Invert()
	}
	return color
}

// Special toggles the inversion of the store's output.
func (s *SetLayerStore) Special() {
	s.inverted = !s.inverted
}
