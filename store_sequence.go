package canvas

import "sort"

// SequenceLayerStore marks each registered layer as applied or not and
// composes applied layers in ascending index order, independent of the
// order they were toggled on.
type SequenceLayerStore struct {
	registry *Registry
	applied  []bool
}

func newSequenceLayerStore(registry *Registry) *SequenceLayerStore {
	return &SequenceLayerStore{
		registry: registry,
		applied:  make([]bool, registry.Len()),
	}
}

// Add marks layer as applied. It reports false when the layer was
// already applied or is not a registered index.
func (s *SequenceLayerStore) Add(layer Layer) bool {
	if layer.Index < 0 || layer.Index >= len(s.applied) {
		return false
	}
	if s.applied[layer.Index] {
		return false
	}
	s.applied[layer.Index] = true
	return true
}

// Erase marks layer as not applied. It reports false when the layer
// was not applied.
func (s *SequenceLayerStore) Erase(layer Layer) bool {
	if layer.Index < 0 || layer.Index >= len(s.applied) {
		return false
	}
	if !s.applied[layer.Index] {
		return false
	}
	s.applied[layer.Index] = false
	return true
}

// GetColor composes every applied layer over start in index order.
// Cost is O(registered layers) regardless of how many are applied.
func (s *SequenceLayerStore) GetColor(start Color, timestamp int64, x, y int) Color {
	color := start
	for index, on := range s.applied {
		if !on {
			continue
		}
		layer, ok := s.registry.Layer(index)
		if !ok {
			continue
		}
		color = layer.Apply(color, timestamp, x, y)
	}
	return color
}

// Special erases the applied layer whose name is the lexicographic
// median. With an even count the lower-middle name wins, i.e. the
// lexicographically smaller of the two middle names. No-op when no
// layers are applied.
func (s *SequenceLayerStore) Special() {
	var candidates []Layer
	for index, on := range s.applied {
		if !on {
			continue
		}
		if layer, ok := s.registry.Layer(index); ok {
			candidates = append(candidates, layer)
		}
	}
	if len(candidates) == 0 {
		return
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})
	median := len(candidates) / 2
	if len(candidates)%2 == 0 {
		median = len(candidates)/2 - 1
	}
	s.Erase(candidates[median])
}

// AppliedCount returns the number of currently applied layers.
func (s *SequenceLayerStore) AppliedCount() int {
	count := 0
	for _, on := range s.applied {
		if on {
			count++
		}
	}
	return count
}
