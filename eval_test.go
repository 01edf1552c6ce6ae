// eval_test.go
package maymun

import "testing"

// --- helpers ---------------------------------------------------------------

func evalSrc(t *testing.T, src string) (Value, bool) {
	t.Helper()
	program := parseProgram(t, src)
	return EvalProgram(program, NewEnv())
}

func mustEval(t *testing.T, src string) Value {
	t.Helper()
	v, ok := evalSrc(t, src)
	if !ok {
		t.Fatalf("no value produced for %q", src)
	}
	return v
}

func wantInteger(t *testing.T, v Value, n int64) {
	t.Helper()
	if v.Tag != VInteger || v.Data.(int64) != n {
		t.Fatalf("want Integer(%d), got %s", n, v)
	}
}

func wantBoolean(t *testing.T, v Value, b bool) {
	t.Helper()
	if v.Tag != VBoolean || v.Data.(bool) != b {
		t.Fatalf("want Boolean(%v), got %s", b, v)
	}
}

func wantError(t *testing.T, v Value, msg string) {
	t.Helper()
	if v.Tag != VError {
		t.Fatalf("want an error signal, got %s", v)
	}
	if got := v.ErrorMessage(); got != msg {
		t.Fatalf("want error %q, got %q", msg, got)
	}
}

// --- expressions -----------------------------------------------------------

func Test_Eval_IntegerExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
	}

	for _, tt := range tests {
		wantInteger(t, mustEval(t, tt.src), tt.want)
	}
}

func Test_Eval_BooleanExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"false != true", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
		{"(1 > 2) == true", false},
		{"(1 > 2) == false", true},
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!0", true},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
	}

	for _, tt := range tests {
		wantBoolean(t, mustEval(t, tt.src), tt.want)
	}
}

func Test_Eval_MixedKindEquality(t *testing.T) {
	// Mixed kinds are structurally unequal, never an error.
	wantBoolean(t, mustEval(t, "1 == true"), false)
	wantBoolean(t, mustEval(t, "1 != true"), true)
}

func Test_Eval_IfElseExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want interface{} // int64 or nil for null
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.src)
		if tt.want == nil {
			if v.Tag != VNull {
				t.Fatalf("%q: want Null, got %s", tt.src, v)
			}
			continue
		}
		wantInteger(t, v, tt.want.(int64))
	}
}

// --- statements ------------------------------------------------------------

func Test_Eval_ReturnStatements(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		// The inner return unwinds both block levels and the outer program.
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; } else { return 11; }", 10},
	}

	for _, tt := range tests {
		wantInteger(t, mustEval(t, tt.src), tt.want)
	}
}

func Test_Eval_LetBindings(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		wantInteger(t, mustEval(t, tt.src), tt.want)
	}
}

func Test_Eval_LetProducesNoValue(t *testing.T) {
	if _, ok := evalSrc(t, "let a = 5;"); ok {
		t.Fatalf("a trailing let must not leave a displayable value")
	}
}

func Test_Eval_EmptyProgram(t *testing.T) {
	if _, ok := evalSrc(t, ""); ok {
		t.Fatalf("empty program must produce no value")
	}
}

// --- error propagation -----------------------------------------------------

func Test_Eval_Errors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"5 + true;", "mismatch expression operation: Integer(5) + Boolean(true)"},
		{"5 + true; 5;", "mismatch expression operation: Integer(5) + Boolean(true)"},
		{"true + false;", "mismatch expression operation: Boolean(true) + Boolean(false)"},
		{"5; true + false; 5", "mismatch expression operation: Boolean(true) + Boolean(false)"},
		{"if (10 > 1) { true + false; }", "mismatch expression operation: Boolean(true) + Boolean(false)"},
		{"foobar", "identifier not found: foobar"},
		{"!if (false) { 10 }", "unknown prefix type: Null"},
		{"-true", "unknown operator: -Boolean(true)"},
		{"5 / 0", "division by zero: Integer(5) / Integer(0)"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.src)
		wantError(t, v, tt.want)
	}
}

func Test_Eval_ErrorStopsExecution(t *testing.T) {
	// The trailing let must never run once the error occurred.
	env := NewEnv()
	program := parseProgram(t, "true + false; let a = 5;")
	v, ok := EvalProgram(program, env)
	if !ok || v.Tag != VError {
		t.Fatalf("want an error result, got %s (ok=%v)", v, ok)
	}
	if _, bound := env.Get("a"); bound {
		t.Fatalf("binding after the error must not happen")
	}
}

func Test_Eval_LetInitializerErrorPropagates(t *testing.T) {
	v := mustEval(t, "let a = 5 + true; a;")
	wantError(t, v, "mismatch expression operation: Integer(5) + Boolean(true)")
}

func Test_Eval_ErrorNeverBound(t *testing.T) {
	env := NewEnv()
	program := parseProgram(t, "let a = foobar;")
	v, _ := EvalProgram(program, env)
	if v.Tag != VError {
		t.Fatalf("want an error result, got %s", v)
	}
	if _, bound := env.Get("a"); bound {
		t.Fatalf("error signals must never be stored in the environment")
	}
}

func Test_Eval_BindingsPersistAcrossPrograms(t *testing.T) {
	env := NewEnv()

	if v, ok := EvalProgram(parseProgram(t, "let a = 5;"), env); ok {
		t.Fatalf("unexpected value from let: %s", v)
	}
	v, ok := EvalProgram(parseProgram(t, "a + 1"), env)
	if !ok {
		t.Fatalf("want a value")
	}
	wantInteger(t, v, 6)
}
