// Package rules evaluates small filter expressions against canvas
// activity events. Three interchangeable engines are provided: expr
// (the default), CEL, and JavaScript behind the js_eval build tag.
//
// Rules are plain expressions over the event binding, e.g.
//
//	verb == "action.undone" && metadata.steps > 2
//
// A rule gates an activity hook when its result is boolean true.
package rules

import (
	"fmt"
	"time"
)

// Context carries the inputs a rule is evaluated against. Event holds
// the binding splatted into the expression scope; Args carries caller
// supplied values reachable under "args".
type Context struct {
	Event map[string]any
	Args  map[string]any
	Now   *time.Time
}

func (ctx Context) withDefaults() Context {
	if ctx.Now == nil {
		now := time.Now()
		ctx.Now = &now
	}
	if ctx.Event == nil {
		ctx.Event = map[string]any{}
	}
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	return ctx
}

func (ctx Context) timestamp() time.Time {
	ctx = ctx.withDefaults()
	return *ctx.Now
}

// Evaluator executes rules against a context.
type Evaluator interface {
	Evaluate(ctx Context, rule string) (any, error)
	Compile(rule string) (CompiledRule, error)
}

// CompiledRule represents a reusable rule program.
type CompiledRule interface {
	Evaluate(ctx Context) (any, error)
}

// Match runs rule against ctx and reports whether it evaluated to
// boolean true. Any non-boolean result is an error: silent coercion
// would make filter behaviour depend on the engine.
func Match(rule CompiledRule, ctx Context) (bool, error) {
	if rule == nil {
		return false, fmt.Errorf("rules: rule is nil")
	}
	result, err := rule.Evaluate(ctx)
	if err != nil {
		return false, err
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("rules: rule result %T is not a boolean", result)
	}
	return matched, nil
}

// ProgramCache stores compiled rule programs keyed by rule text.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}
