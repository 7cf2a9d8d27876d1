/*
File    : go-lite/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/go-lite/objects"
	"github.com/akashmaji946/go-lite/parser"
	"github.com/akashmaji946/go-lite/scope"
	"github.com/stretchr/testify/assert"
)

func testEval(t *testing.T, input string) objects.Object {
	t.Helper()
	p := parser.NewParser(input)
	program := p.ParseProgram()
	if p.HasErrors() {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}
	env := scope.NewScope()
	return Eval(program, env)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int32
	}{
		{"5 + 5 + 5 + 5 - 10", 10},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"5 * 5", 25},
		{"-5", -5},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		intObj, ok := result.(*objects.Integer)
		assert.True(t, ok, "%s: got %T (%v)", tt.input, result, result)
		assert.Equal(t, tt.expected, intObj.Value, tt.input)
	}
}

func TestEvalIfElseExpression(t *testing.T) {
	result := testEval(t, "if (1 > 2) { 10 } else { 20 }")
	intObj, ok := result.(*objects.Integer)
	assert.True(t, ok)
	assert.Equal(t, int32(20), intObj.Value)
}

func TestReturnStatementEscapesNestedBlock(t *testing.T) {
	result := testEval(t, "if (10 > 1) { if (10 > 1) { return 10; } return 1; }")
	intObj, ok := result.(*objects.Integer)
	assert.True(t, ok)
	assert.Equal(t, int32(10), intObj.Value)
}

func TestFunctionApplication(t *testing.T) {
	result := testEval(t, "let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));")
	intObj, ok := result.(*objects.Integer)
	assert.True(t, ok)
	assert.Equal(t, int32(20), intObj.Value)
}

func TestClosures(t *testing.T) {
	result := testEval(t, "let newAdder = fn(x) { fn(y) { x + y } }; let a2 = newAdder(2); a2(2);")
	intObj, ok := result.(*objects.Integer)
	assert.True(t, ok)
	assert.Equal(t, int32(4), intObj.Value)
}

func TestClosureCapturesByEnvironmentPointerNotByNameAtCallTime(t *testing.T) {
	// f closes over the global scope at its definition site. wrap's call
	// frame (also enclosed by the global scope) binds g locally, but that
	// binding is invisible to f: capture is by environment pointer, not by
	// name resolved dynamically at call time.
	result := testEval(t, "let f = fn() { g }; let wrap = fn() { let g = 1; f() }; wrap();")
	errObj, ok := result.(*objects.Error)
	assert.True(t, ok, "expected error, got %T (%v)", result, result)
	assert.Equal(t, "identifier not found: g", errObj.Message)
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + true;", "type mismatch: 5 + true"},
		{"5 + true; 5;", "type mismatch: 5 + true"},
		{"-true", "unknown operator: -true"},
		{"true + false;", "unknown operator: true + false"},
		{"5; true + false; 5", "unknown operator: true + false"},
		{"if (10 > 1) { true + false; }", "unknown operator: true + false"},
		{
			"if (10 > 1) { if (10 > 1) { return true + false; } return 1; }",
			"unknown operator: true + false",
		},
		{"foobar;", "identifier not found: foobar"},
		{"fn(x) { x; }(1, 2);", "invalid number of arguments: exected=1, got=2"},
		{"5(1);", "not a function: 5"},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		errObj, ok := result.(*objects.Error)
		assert.True(t, ok, "%s: expected error, got %T (%v)", tt.input, result, result)
		if ok {
			assert.Equal(t, tt.expected, errObj.Message, tt.input)
		}
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int32
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		intObj, ok := result.(*objects.Integer)
		assert.True(t, ok)
		assert.Equal(t, tt.expected, intObj.Value, tt.input)
	}
}

func TestReturnValueNeverLeaksToTopLevel(t *testing.T) {
	result := testEval(t, "return 5;")
	_, isReturnValue := result.(*objects.ReturnValue)
	assert.False(t, isReturnValue)
	intObj, ok := result.(*objects.Integer)
	assert.True(t, ok)
	assert.Equal(t, int32(5), intObj.Value)
}

func TestFunctionObjectDisplay(t *testing.T) {
	result := testEval(t, "fn(x, y) { x + y; };")
	assert.Equal(t, "fn(x, y) {...}", result.String())
}
