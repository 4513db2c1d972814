package rules

import (
	"errors"
	"fmt"
)

// EvaluationError captures engine metadata alongside the originating
// error.
type EvaluationError struct {
	Engine string
	Rule   string
	Err    error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rules: %s engine %s: %v", e.Engine, describeRule(e.Rule), e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeRule(rule string) string {
	if rule == "" {
		return "rule=<empty>"
	}
	return fmt.Sprintf("rule=%q", rule)
}

func wrapEngineError(engine string, err error) error {
	if err == nil {
		return nil
	}
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}
	return fmt.Errorf("rules: %s engine: %w", engine, err)
}

func wrapEvaluationError(engine, rule string, err error) error {
	if err == nil {
		return nil
	}
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		if evalErr.Engine == "" {
			evalErr.Engine = engine
		}
		if evalErr.Rule == "" {
			evalErr.Rule = rule
		}
		return evalErr
	}
	return &EvaluationError{Engine: engine, Rule: rule, Err: err}
}
