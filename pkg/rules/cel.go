package rules

import (
	"fmt"
	"sort"
	"strings"

	celgo "github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// maxCallArgs bounds the arity of the call(...) helper; CEL overloads are
// declared per argument count.
const maxCallArgs = 5

// CELOption configures the CEL engine.
type CELOption func(*celEvaluator)

// CELWithProgramCache wires a ProgramCache into the CEL engine.
func CELWithProgramCache(cache ProgramCache) CELOption {
	return func(e *celEvaluator) {
		e.cache = cache
	}
}

// CELWithFunctionRegistry wires a FunctionRegistry into the CEL engine.
func CELWithFunctionRegistry(registry *FunctionRegistry) CELOption {
	return func(e *celEvaluator) {
		if registry == nil {
			return
		}
		e.registry = registry.Clone()
	}
}

type celProgram struct {
	env     *celgo.Env
	program celgo.Program
}

type celEvaluator struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// NewCELEvaluator constructs an Evaluator backed by cel-go.
func NewCELEvaluator(opts ...CELOption) Evaluator {
	e := &celEvaluator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *celEvaluator) Evaluate(ctx Context, rule string) (any, error) {
	if rule == "" {
		return nil, wrapEngineError("cel", fmt.Errorf("rule must not be empty"))
	}
	ctx = ctx.withDefaults()
	program, err := e.loadOrCompile(rule, ctx.Event)
	if err != nil {
		return nil, wrapEvaluationError("cel", rule, err)
	}
	out, _, err := program.program.Eval(e.activation(ctx))
	if err != nil {
		return nil, wrapEvaluationError("cel", rule, err)
	}
	return out.Value(), nil
}

func (e *celEvaluator) Compile(rule string) (CompiledRule, error) {
	if rule == "" {
		return nil, wrapEngineError("cel", fmt.Errorf("rule must not be empty"))
	}
	return &celCompiledRule{evaluator: e, rule: rule}, nil
}

// loadOrCompile builds the CEL environment against the binding's keys,
// so compilation is deferred until the event shape is known.
func (e *celEvaluator) loadOrCompile(rule string, binding map[string]any) (*celProgram, error) {
	if binding == nil {
		binding = map[string]any{}
	}
	key := programKey(rule, binding)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			if program, ok := cached.(*celProgram); ok {
				return program, nil
			}
		}
	}

	env, err := e.buildEnv(binding)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Parse(rule)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	checked, issues := env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prg, err := env.Program(checked)
	if err != nil {
		return nil, err
	}

	bundle := &celProgram{env: env, program: prg}
	if e.cache != nil {
		e.cache.Set(key, bundle)
	}
	return bundle, nil
}

// programKey combines the rule with the binding's key set, since the
// compiled environment declares a variable per binding key.
func programKey(rule string, binding map[string]any) string {
	keys := make([]string, 0, len(binding))
	for key := range binding {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return rule + "\x00" + strings.Join(keys, ",")
}

func (e *celEvaluator) buildEnv(binding map[string]any) (*celgo.Env, error) {
	opts := []celgo.EnvOption{
		celgo.Variable("now", celgo.TimestampType),
		celgo.Variable("args", celgo.DynType),
	}
	if e.registry != nil {
		binding := e.callBinding()
		overloads := make([]celgo.FunctionOpt, 0, maxCallArgs)
		argTypes := []*celgo.Type{celgo.StringType}
		for i := 0; i < maxCallArgs; i++ {
			overloads = append(overloads, celgo.Overload(
				fmt.Sprintf("call_dyn_%d", i),
				append([]*celgo.Type(nil), argTypes...),
				celgo.DynType,
				celgo.FunctionBinding(binding),
			))
			argTypes = append(argTypes, celgo.DynType)
		}
		opts = append(opts, celgo.Function("call", overloads...))
	}
	for key := range binding {
		opts = append(opts, celgo.Variable(key, celgo.DynType))
	}
	return celgo.NewEnv(opts...)
}

func (e *celEvaluator) activation(ctx Context) map[string]any {
	activation := map[string]any{
		"now":  ctx.timestamp(),
		"args": ctx.Args,
	}
	for key, value := range ctx.Event {
		activation[key] = value
	}
	if e.registry != nil {
		activation["call"] = func(name string, arguments ...any) (any, error) {
			return e.registry.Call(name, arguments...)
		}
	}
	return activation
}

type celCompiledRule struct {
	evaluator *celEvaluator
	rule      string
}

func (r *celCompiledRule) Evaluate(ctx Context) (any, error) {
	if r.evaluator == nil {
		return nil, wrapEngineError("cel", fmt.Errorf("compiled rule missing evaluator"))
	}
	ctx = ctx.withDefaults()
	program, err := r.evaluator.loadOrCompile(r.rule, ctx.Event)
	if err != nil {
		return nil, wrapEvaluationError("cel", r.rule, err)
	}
	out, _, err := program.program.Eval(r.evaluator.activation(ctx))
	if err != nil {
		return nil, wrapEvaluationError("cel", r.rule, err)
	}
	return out.Value(), nil
}

func (e *celEvaluator) callBinding() func(...ref.Val) ref.Val {
	return func(values ...ref.Val) ref.Val {
		if e.registry == nil {
			return types.NewErr("rules: function registry not configured")
		}
		if len(values) == 0 {
			return types.NewErr("rules: call requires function name")
		}
		name, ok := values[0].Value().(string)
		if !ok {
			return types.NewErr("rules: call name must be string")
		}
		args := make([]any, 0, len(values)-1)
		for _, val := range values[1:] {
			args = append(args, val.Value())
		}
		result, err := e.registry.Call(name, args...)
		if err != nil {
			return types.NewErr(err.Error())
		}
		if result == nil {
			return types.NullValue
		}
		return types.DefaultTypeAdapter.NativeToValue(result)
	}
}
