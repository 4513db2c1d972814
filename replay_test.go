package canvas

import (
	"testing"

	"github.com/goliatone/go-canvas/pkg/activity"
)

func TestReplayTrackerScenario(t *testing.T) {
	g, layers := newTestGrid(t, DrawStyleSet)
	tracker := NewReplayTracker()

	special := NewPaintAction(WithSpecial())
	draw := NewPaintAction(WithSteps(PaintStep{X: 0, Y: 0, Layer: layers["red"]}))

	tracker.AddAction(special, false)
	tracker.AddAction(draw, false)
	tracker.AddAction(draw, true)
	tracker.StartReplay()

	for i := 0; i < 3; i++ {
		if tracker.PlayNextAction(g) {
			t.Fatalf("play %d reported nothing happened with entries pending", i)
		}
	}
	if !tracker.PlayNextAction(g) {
		t.Fatalf("play on drained queue reported work done")
	}
	if tracker.Replaying() {
		t.Fatalf("draining the queue did not stop playback mode")
	}

	// Special inverted every cell, draw then drew and undid red.
	start := Color{R: 9, G: 9, B: 9}
	if got := g.Cell(0, 0).GetColor(start, 0, 0, 0); got != start.Invert() {
		t.Fatalf("replayed state = %+v, want inversion only", got)
	}
}

func TestReplayTrackerInactiveWithoutStart(t *testing.T) {
	g, layers := newTestGrid(t, DrawStyleSet)
	tracker := NewReplayTracker()
	tracker.AddAction(NewPaintAction(WithSteps(PaintStep{X: 0, Y: 0, Layer: layers["red"]})), false)

	if !tracker.PlayNextAction(g) {
		t.Fatalf("playback ran before StartReplay")
	}
	if tracker.Pending() != 1 {
		t.Fatalf("inactive playback consumed the queue, pending = %d", tracker.Pending())
	}
}

func TestReplayTrackerConsumesOneEntryPerCall(t *testing.T) {
	g, layers := newTestGrid(t, DrawStyleAdd)
	tracker := NewReplayTracker()
	for i := 0; i < 3; i++ {
		tracker.AddAction(NewPaintAction(WithSteps(PaintStep{X: 0, Y: 0, Layer: layers["red"]})), false)
	}
	tracker.StartReplay()

	tracker.PlayNextAction(g)
	if tracker.Pending() != 2 {
		t.Fatalf("pending = %d after one play, want 2", tracker.Pending())
	}
}

func TestReplayTrackerDropsBeyondCapacity(t *testing.T) {
	tracker := NewReplayTracker()
	action := NewPaintAction()
	for i := 0; i < HistoryCapacity; i++ {
		if !tracker.AddAction(action, false) {
			t.Fatalf("AddAction %d rejected below capacity", i)
		}
	}
	if tracker.AddAction(action, false) {
		t.Fatalf("AddAction succeeded beyond capacity")
	}
	if tracker.Pending() != HistoryCapacity {
		t.Fatalf("pending = %d, want %d", tracker.Pending(), HistoryCapacity)
	}
}

func TestReplayTrackerEmitsActivity(t *testing.T) {
	g, layers := newTestGrid(t, DrawStyleSet)
	capture := &activity.CaptureHook{}
	emitter := activity.NewEmitter(activity.Hooks{capture}, activity.Config{Enabled: true})
	tracker := NewReplayTracker(WithReplayEmitter(emitter))

	action := NewPaintAction(WithSteps(PaintStep{X: 1, Y: 1, Layer: layers["green"]}))
	tracker.AddAction(action, true)
	tracker.StartReplay()
	tracker.PlayNextAction(g)

	events := capture.Captured()
	if len(events) != 1 {
		t.Fatalf("captured %d events, want 1", len(events))
	}
	event := events[0]
	if event.Verb != "action.replayed" || event.ObjectID != action.ID() {
		t.Fatalf("event = %+v, want action.replayed for %s", event, action.ID())
	}
	if event.Metadata["is_undo"] != true {
		t.Fatalf("event metadata missing is_undo: %+v", event.Metadata)
	}
	if event.Channel != "canvas" {
		t.Fatalf("event channel = %q, want default canvas", event.Channel)
	}
}
