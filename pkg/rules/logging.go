package rules

import "time"

// LogEvent describes one rule evaluation for logging.
type LogEvent struct {
	Engine   string
	Rule     string
	Duration time.Duration
	Err      error
}

// Logger records rule evaluations.
type Logger interface {
	LogEvaluation(LogEvent)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(LogEvent)

// LogEvaluation implements Logger.
func (f LoggerFunc) LogEvaluation(event LogEvent) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) LogEvaluation(LogEvent) {}

// LoggedEvaluator wraps e so every evaluation is reported to logger.
func LoggedEvaluator(e Evaluator, engine string, logger Logger) Evaluator {
	if logger == nil {
		logger = noopLogger{}
	}
	return &loggedEvaluator{inner: e, engine: engine, logger: logger}
}

type loggedEvaluator struct {
	inner  Evaluator
	engine string
	logger Logger
}

func (l *loggedEvaluator) Evaluate(ctx Context, rule string) (any, error) {
	start := time.Now()
	result, err := l.inner.Evaluate(ctx, rule)
	l.logger.LogEvaluation(LogEvent{
		Engine:   l.engine,
		Rule:     rule,
		Duration: time.Since(start),
		Err:      err,
	})
	return result, err
}

func (l *loggedEvaluator) Compile(rule string) (CompiledRule, error) {
	compiled, err := l.inner.Compile(rule)
	if err != nil || compiled == nil {
		return compiled, err
	}
	return &loggedRule{inner: compiled, engine: l.engine, rule: rule, logger: l.logger}, nil
}

type loggedRule struct {
	inner  CompiledRule
	engine string
	rule   string
	logger Logger
}

func (l *loggedRule) Evaluate(ctx Context) (any, error) {
	start := time.Now()
	result, err := l.inner.Evaluate(ctx)
	l.logger.LogEvaluation(LogEvent{
		Engine:   l.engine,
		Rule:     l.rule,
		Duration: time.Since(start),
		Err:      err,
	})
	return result, err
}
