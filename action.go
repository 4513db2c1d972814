package canvas

import "github.com/google/uuid"

// PaintStep records one per-cell edit: applying a layer at (x, y). The
// step holds coordinates and the layer only, never grid state.
type PaintStep struct {
	X     int
	Y     int
	Layer Layer
}

// PaintAction is a reversible batch of paint steps, optionally followed
// by a grid-wide special effect. Applying and undoing an action are
// exact inverses, which is what the history trackers rely on.
type PaintAction struct {
	id      string
	steps   []PaintStep
	special bool
}

// PaintActionOption configures a paint action at construction.
type PaintActionOption func(*PaintAction)

// WithSteps seeds the action with the given steps.
func WithSteps(steps ...PaintStep) PaintActionOption {
	return func(a *PaintAction) {
		a.steps = append(a.steps, steps...)
	}
}

// WithSpecial marks the action as a grid-wide special effect.
func WithSpecial() PaintActionOption {
	return func(a *PaintAction) {
		a.special = true
	}
}

// WithActionID overrides the generated action identifier.
func WithActionID(id string) PaintActionOption {
	return func(a *PaintAction) {
		if id != "" {
			a.id = id
		}
	}
}

// NewPaintAction builds an action with a generated identifier.
func NewPaintAction(opts ...PaintActionOption) *PaintAction {
	a := &PaintAction{id: uuid.NewString()}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// ID returns the action's stable identifier.
func (a *PaintAction) ID() string {
	return a.id
}

// AddStep appends a step to the action.
func (a *PaintAction) AddStep(step PaintStep) {
	a.steps = append(a.steps, step)
}

// Steps returns a copy of the recorded steps in application order.
func (a *PaintAction) Steps() []PaintStep {
	if len(a.steps) == 0 {
		return nil
	}
	out := make([]PaintStep, len(a.steps))
	copy(out, a.steps)
	return out
}

// IsSpecial reports whether the action carries a grid-wide special.
func (a *PaintAction) IsSpecial() bool {
	return a.special
}

// Apply adds each step's layer to its target cell in order, then
// broadcasts the special effect when the action carries one. Steps
// pointing outside the grid are skipped.
func (a *PaintAction) Apply(g *Grid) {
	for _, step := range a.steps {
		if store := g.Cell(step.X, step.Y); store != nil {
			store.Add(step.Layer)
		}
	}
	if a.special {
		g.Special()
	}
}

// UndoApply reverses Apply: the special broadcast is re-issued first,
// then each step's layer is erased in reverse order.
func (a *PaintAction) UndoApply(g *Grid) {
	if a.special {
		g.Special()
	}
	for i := len(a.steps) - 1; i >= 0; i-- {
		step := a.steps[i]
		if store := g.Cell(step.X, step.Y); store != nil {
			store.Erase(step.Layer)
		}
	}
}

// RedoApply re-applies the action's forward effect.
func (a *PaintAction) RedoApply(g *Grid) {
	a.Apply(g)
}
