package canvas

import (
	"context"
	"time"

	"github.com/goliatone/go-canvas/internal/ring"
	"github.com/goliatone/go-canvas/pkg/activity"
)

type replayEntry struct {
	action *PaintAction
	isUndo bool
}

// ReplayTracker queues recorded actions and plays them back against a
// grid strictly in insertion order, one entry per call.
type ReplayTracker struct {
	actions   *ring.Queue[replayEntry]
	replaying bool
	emitter   *activity.Emitter
	logger    HistoryLogger
}

// ReplayOption configures a ReplayTracker.
type ReplayOption func(*ReplayTracker)

// WithReplayEmitter attaches an activity emitter; played-back actions
// are published through it.
func WithReplayEmitter(emitter *activity.Emitter) ReplayOption {
	return func(t *ReplayTracker) {
		t.emitter = emitter
	}
}

// WithReplayLogger attaches a history logger.
func WithReplayLogger(logger HistoryLogger) ReplayOption {
	return func(t *ReplayTracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewReplayTracker builds a tracker with an empty queue.
func NewReplayTracker(opts ...ReplayOption) *ReplayTracker {
	t := &ReplayTracker{
		actions: ring.NewQueue[replayEntry](HistoryCapacity),
		logger:  noopHistoryLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// AddAction enqueues action for later playback. isUndo marks entries
// that should be played as undos; special, redo, and draw actions all
// record false. It reports false when the queue is at capacity and the
// entry was dropped.
func (t *ReplayTracker) AddAction(action *PaintAction, isUndo bool) bool {
	if action == nil {
		return false
	}
	if !t.actions.Enqueue(replayEntry{action: action, isUndo: isUndo}) {
		t.logger.LogHistory(HistoryLogEvent{Verb: "replay.dropped", ActionID: action.ID(), Dropped: true})
		return false
	}
	return true
}

// StartReplay switches the tracker into playback mode. It must be
// called before PlayNextAction has any effect.
func (t *ReplayTracker) StartReplay() {
	t.replaying = true
}

// Replaying reports whether the tracker is in playback mode.
func (t *ReplayTracker) Replaying() bool {
	return t.replaying
}

// PlayNextAction plays exactly one queued entry against grid and
// reports true when nothing happened: either playback never started or
// the queue is drained, in which case playback mode is switched off.
// A false return means one entry was consumed and applied.
func (t *ReplayTracker) PlayNextAction(grid *Grid) bool {
	if !t.replaying {
		return true
	}
	entry, ok := t.actions.Dequeue()
	if !ok {
		t.replaying = false
		return true
	}

	start := time.Now()
	if entry.isUndo {
		entry.action.UndoApply(grid)
	} else {
		entry.action.RedoApply(grid)
	}
	t.logger.LogHistory(HistoryLogEvent{Verb: "action.replayed", ActionID: entry.action.ID(), Duration: time.Since(start)})
	if t.emitter.Enabled() {
		_ = t.emitter.Emit(context.Background(), activity.Event{
			Verb:       "action.replayed",
			ObjectType: "paint_action",
			ObjectID:   entry.action.ID(),
			Metadata: map[string]any{
				"steps":   len(entry.action.steps),
				"special": entry.action.special,
				"is_undo": entry.isUndo,
			},
		})
	}
	return false
}

// Pending returns the number of queued entries not yet played.
func (t *ReplayTracker) Pending() int {
	return t.actions.Len()
}
