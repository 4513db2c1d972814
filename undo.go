package canvas

import (
	"context"
	"time"

	"github.com/goliatone/go-canvas/internal/ring"
	"github.com/goliatone/go-canvas/pkg/activity"
)

// HistoryCapacity bounds both tracker stacks and the replay queue.
// Exceeding it silently drops new entries.
const HistoryCapacity = 10000

// UndoTracker records applied paint actions on a bounded stack and can
// rewind and replay them against a grid. An action lives on at most one
// of the two stacks at a time.
type UndoTracker struct {
	done    *ring.Stack[*PaintAction]
	undone  *ring.Stack[*PaintAction]
	emitter *activity.Emitter
	logger  HistoryLogger
}

// UndoOption configures an UndoTracker.
type UndoOption func(*UndoTracker)

// WithUndoEmitter attaches an activity emitter; undo and redo
// operations are published through it.
func WithUndoEmitter(emitter *activity.Emitter) UndoOption {
	return func(t *UndoTracker) {
		t.emitter = emitter
	}
}

// WithUndoLogger attaches a history logger.
func WithUndoLogger(logger HistoryLogger) UndoOption {
	return func(t *UndoTracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewUndoTracker builds a tracker with empty stacks.
func NewUndoTracker(opts ...UndoOption) *UndoTracker {
	t := &UndoTracker{
		done:   ring.NewStack[*PaintAction](HistoryCapacity),
		undone: ring.NewStack[*PaintAction](HistoryCapacity),
		logger: noopHistoryLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// AddAction records an already-applied action. It reports false when
// the stack is at capacity and the action was dropped; the drop is not
// an error. It never clears the redo stack: callers invalidate redo
// history explicitly via ResetRedo.
func (t *UndoTracker) AddAction(action *PaintAction) bool {
	if action == nil {
		return false
	}
	if !t.done.Push(action) {
		t.logger.LogHistory(HistoryLogEvent{Verb: "action.dropped", ActionID: action.ID(), Dropped: true})
		return false
	}
	t.emit("action.applied", action)
	return true
}

// Undo pops the most recent action, applies its inverse to grid, and
// parks it on the redo stack. It returns nil when there is nothing to
// undo.
func (t *UndoTracker) Undo(grid *Grid) *PaintAction {
	action, ok := t.done.Pop()
	if !ok {
		return nil
	}
	start := time.Now()
	action.UndoApply(grid)
	t.undone.Push(action)
	t.logger.LogHistory(HistoryLogEvent{Verb: "action.undone", ActionID: action.ID(), Duration: time.Since(start)})
	t.emit("action.undone", action)
	return action
}

// Redo pops the most recently undone action, re-applies it to grid,
// and moves it back onto the undo stack. It returns nil when there is
// nothing to redo.
func (t *UndoTracker) Redo(grid *Grid) *PaintAction {
	action, ok := t.undone.Pop()
	if !ok {
		return nil
	}
	start := time.Now()
	action.RedoApply(grid)
	t.done.Push(action)
	t.logger.LogHistory(HistoryLogEvent{Verb: "action.redone", ActionID: action.ID(), Duration: time.Since(start)})
	t.emit("action.redone", action)
	return action
}

// ResetRedo clears the redo stack. Call it when a new action arrives
// after an undo, which invalidates the remaining redo history.
func (t *UndoTracker) ResetRedo() {
	for {
		if _, ok := t.undone.Pop(); !ok {
			return
		}
	}
}

// DoneLen returns the number of undoable actions.
func (t *UndoTracker) DoneLen() int {
	return t.done.Len()
}

// UndoneLen returns the number of redoable actions.
func (t *UndoTracker) UndoneLen() int {
	return t.undone.Len()
}

func (t *UndoTracker) emit(verb string, action *PaintAction) {
	if !t.emitter.Enabled() {
		return
	}
	_ = t.emitter.Emit(context.Background(), activity.Event{
		Verb:       verb,
		ObjectType: "paint_action",
		ObjectID:   action.ID(),
		Metadata: map[string]any{
			"steps":   len(action.steps),
			"special": action.special,
		},
	})
}
