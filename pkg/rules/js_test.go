package rules

import "testing"

func TestJSEvaluateAgainstEvent(t *testing.T) {
	if !jsEvaluatorAvailable() {
		t.Skip("built without the js_eval tag")
	}
	engine := NewJSEvaluator()
	result, err := engine.Evaluate(eventContext("action.undone", 4), `verb === "action.undone"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != true {
		t.Fatalf("result = %v, want true", result)
	}
}

func TestJSUnavailableWithoutTag(t *testing.T) {
	if jsEvaluatorAvailable() {
		t.Skip("built with the js_eval tag")
	}
	if engine := NewJSEvaluator(); engine != nil {
		t.Fatalf("NewJSEvaluator = %v, want nil", engine)
	}
}
