package activity

import (
	"context"

	"github.com/goliatone/go-canvas/pkg/rules"
)

// NewFilterHook wraps next so it only receives events matching rule.
// The event is exposed to the rule as verb, object_type, object_id,
// channel, metadata, and occurred_at. Evaluation errors propagate to
// the caller through Hooks.Notify.
func NewFilterHook(rule rules.CompiledRule, next Hook) Hook {
	return HookFunc(func(ctx context.Context, event Event) error {
		if rule == nil || next == nil {
			return nil
		}
		matched, err := rules.Match(rule, rules.Context{Event: eventBinding(event)})
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}
		return next.Notify(ctx, event)
	})
}

func eventBinding(event Event) map[string]any {
	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return map[string]any{
		"verb":        event.Verb,
		"object_type": event.ObjectType,
		"object_id":   event.ObjectID,
		"channel":     event.Channel,
		"metadata":    metadata,
		"occurred_at": event.OccurredAt,
	}
}
