// interpreter.go — public surface of the Maymun runtime.
//
// This file holds the runtime value model (Value, ValueTag, constructors),
// the session Environment, and the Interpreter convenience wrapper used by
// the CLI. The evaluation algorithm itself lives in eval.go.
//
// Values are a tagged sum: integer, boolean, null, plus two internal-only
// control signals (return, error) that flow through the same channel as
// ordinary results. Signal values unwind evaluation and are never stored in
// an Environment.
package maymun

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the interpreter version reported by the CLI.
const Version = "0.1.0"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VNull    ValueTag = iota // null (no payload)
	VBoolean                 // bool
	VInteger                 // int64
	VReturn                  // *Value (control signal: unwind with inner value)
	VError                   // string (control signal: evaluation failure)
)

// Value is the tagged runtime carrier produced by evaluation. The tag
// determines which Go type Data holds (see ValueTag).
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Null is the singleton null Value.
var Null = Value{Tag: VNull}

// Integer wraps a 64-bit signed integer.
func Integer(n int64) Value { return Value{Tag: VInteger, Data: n} }

// Boolean wraps a bool.
func Boolean(b bool) Value { return Value{Tag: VBoolean, Data: b} }

// ReturnValue wraps v in a return signal. The signal exclusively owns the
// inner value and exists only to unwind nested block evaluation.
func ReturnValue(v Value) Value { return Value{Tag: VReturn, Data: &v} }

// Errorf builds an error-signal value with a formatted message.
func Errorf(format string, args ...interface{}) Value {
	return Value{Tag: VError, Data: fmt.Sprintf(format, args...)}
}

// IsError reports whether v is an error signal.
func (v Value) IsError() bool { return v.Tag == VError }

// ErrorMessage returns the message of an error signal, or "".
func (v Value) ErrorMessage() string {
	if v.Tag != VError {
		return ""
	}
	return v.Data.(string)
}

// String renders the diagnostic form used inside evaluation error messages:
// Integer(5), Boolean(true), Null, Return(...), Error(msg).
func (v Value) String() string {
	switch v.Tag {
	case VNull:
		return "Null"
	case VBoolean:
		return fmt.Sprintf("Boolean(%v)", v.Data.(bool))
	case VInteger:
		return fmt.Sprintf("Integer(%d)", v.Data.(int64))
	case VReturn:
		return fmt.Sprintf("Return(%s)", *v.Data.(*Value))
	case VError:
		return fmt.Sprintf("Error(%s)", v.Data.(string))
	default:
		return "<unknown>"
	}
}

// FormatValue renders the display form shown by the REPL: integers as
// decimal, booleans as true/false, null as null, error signals as their
// message.
func FormatValue(v Value) string {
	switch v.Tag {
	case VNull:
		return "null"
	case VBoolean:
		return strconv.FormatBool(v.Data.(bool))
	case VInteger:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VReturn:
		return FormatValue(*v.Data.(*Value))
	case VError:
		return v.Data.(string)
	default:
		return "<unknown>"
	}
}

// valuesEqual is structural equality: like kinds compare by payload, mixed
// kinds are unequal (never coerced).
func valuesEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VNull:
		return true
	case VBoolean:
		return a.Data.(bool) == b.Data.(bool)
	case VInteger:
		return a.Data.(int64) == b.Data.(int64)
	default:
		return false
	}
}

// Env is the mutable identifier→value mapping for one evaluation session.
// Only terminal, non-signal values are ever bound.
type Env struct {
	table map[string]Value
}

// NewEnv creates an empty session environment.
func NewEnv() *Env { return &Env{table: make(map[string]Value)} }

// Get retrieves the binding for name.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}

// Define binds name to v, overwriting any previous binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// ParseError aggregates the parser's diagnostics for one source text.
type ParseError struct {
	Diagnostics []string
}

func (e *ParseError) Error() string { return strings.Join(e.Diagnostics, "\n") }

// Parse runs the lexer and parser over src. The returned diagnostics list is
// non-empty when the tree must not be evaluated.
func Parse(src string) (*Program, []string) {
	p := NewParser(NewLexer(src))
	program := p.ParseProgram()
	return program, p.Errors()
}

// Interpreter owns the persistent environment of one session (one REPL
// process lifetime). It must not be used concurrently.
type Interpreter struct {
	Global *Env
}

// NewInterpreter creates an interpreter with a fresh session environment.
func NewInterpreter() *Interpreter { return &Interpreter{Global: NewEnv()} }

// EvalSource parses src and evaluates it against the session environment.
// Parse failures are returned as *ParseError and nothing is evaluated.
// ok reports whether the program produced a terminal value (false only for
// an empty statement sequence).
func (ip *Interpreter) EvalSource(src string) (v Value, ok bool, err error) {
	program, errs := Parse(src)
	if len(errs) > 0 {
		return Value{}, false, &ParseError{Diagnostics: errs}
	}
	v, ok = EvalProgram(program, ip.Global)
	return v, ok, nil
}
