package canvas

import "github.com/goliatone/go-canvas/internal/ring"

// additiveCapacityFactor sizes the queue so repeated add/erase cycles
// over every registered layer never starve capacity.
const additiveCapacityFactor = 100

// AdditiveLayerStore queues layers and composes them oldest first.
// Duplicates are allowed and multiplicities are meaningful.
type AdditiveLayerStore struct {
	layers *ring.Queue[Layer]
}

func newAdditiveLayerStore(registry *Registry) *AdditiveLayerStore {
	capacity := additiveCapacityFactor * registry.Len()
	if capacity < additiveCapacityFactor {
		capacity = additiveCapacityFactor
	}
	return &AdditiveLayerStore{layers: ring.NewQueue[Layer](capacity)}
}

// Add appends layer at the tail. It reports false only when the queue
// is at capacity.
func (s *AdditiveLayerStore) Add(layer Layer) bool {
	return s.layers.Enqueue(layer)
}

// Erase removes the oldest queued layer. The argument is ignored: the
// store is strictly FIFO, whichever layer was requested. It reports
// false when the queue was empty.
func (s *AdditiveLayerStore) Erase(Layer) bool {
	_, ok := s.layers.Dequeue()
	return ok
}

// GetColor folds every queued layer over start in head-to-tail order.
// Entries are rotated out and back in, so the queue order is preserved.
func (s *AdditiveLayerStore) GetColor(start Color, timestamp int64, x, y int) Color {
	color := start
	for i, n := 0, s.layers.Len(); i < n; i++ {
		layer, _ := s.layers.Dequeue()
		color = layer.Apply(color, timestamp, x, y)
		s.layers.Enqueue(layer)
	}
	return color
}

// Special reverses the queue in place: the queue drains into a
// temporary stack and the stack drains back, so the oldest layer
// becomes the newest.
func (s *AdditiveLayerStore) Special() {
	reversed := ring.NewStack[Layer](s.layers.Len())
	for {
		layer, ok := s.layers.Dequeue()
		if !ok {
			break
		}
		reversed.Push(layer)
	}
	for {
		layer, ok := reversed.Pop()
		if !ok {
			break
		}
		s.layers.Enqueue(layer)
	}
}

// Len returns the number of queued layers.
func (s *AdditiveLayerStore) Len() int {
	return s.layers.Len()
}
