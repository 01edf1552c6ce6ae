// eval.go — tree-walking evaluator.
//
// Evaluation threads one mutable Env through a recursive walk of the AST.
// The two control signals (VReturn, VError) travel as ordinary values and
// are checked after every sub-evaluation; there is no exception path. A
// return signal is wrapped at block level and unwrapped exactly once at
// program level, which is what lets `return` unwind through arbitrarily
// nested blocks.
package maymun

// EvalProgram executes the top-level statements in order against env.
// ok is false only for an empty statement sequence; otherwise the returned
// value is that of the last-executed construct, modulated by early
// termination on return or error.
func EvalProgram(program *Program, env *Env) (Value, bool) {
	var result Value
	ok := false

	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ExpressionStatement:
			v := evalExpression(s.Expression, env)
			if v.Tag == VError {
				return v, true
			}
			if v.Tag == VReturn {
				// Program-level return unwraps, unlike block-level.
				return *v.Data.(*Value), true
			}
			result, ok = v, true
		case *ReturnStatement:
			return evalExpression(s.Value, env), true
		case *LetStatement:
			v := evalExpression(s.Value, env)
			if v.Tag == VError {
				return v, true
			}
			env.Define(s.Name, v)
			result, ok = Value{}, false
		}
	}

	return result, ok
}

// evalBlock mirrors EvalProgram except a return statement's value is wrapped
// in a return signal instead of being surfaced directly.
func evalBlock(block *BlockStatement, env *Env) Value {
	result := Null

	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ExpressionStatement:
			v := evalExpression(s.Expression, env)
			if v.Tag == VError || v.Tag == VReturn {
				return v
			}
			result = v
		case *ReturnStatement:
			v := evalExpression(s.Value, env)
			if v.Tag == VError {
				return v
			}
			return ReturnValue(v)
		case *LetStatement:
			v := evalExpression(s.Value, env)
			if v.Tag == VError {
				return v
			}
			env.Define(s.Name, v)
			result = Null
		}
	}

	return result
}

func evalExpression(expr Expression, env *Env) Value {
	switch e := expr.(type) {
	case *IntegerLiteral:
		return Integer(e.Value)
	case *BooleanLiteral:
		return Boolean(e.Value)
	case *Literal:
		if v, ok := env.Get(e.Value); ok {
			return v
		}
		return Errorf("identifier not found: %s", e.Value)
	case *PrefixExpression:
		return evalPrefix(e, env)
	case *InfixExpression:
		left := evalExpression(e.Left, env)
		if left.Tag == VError {
			return left
		}
		right := evalExpression(e.Right, env)
		if right.Tag == VError {
			return right
		}
		return evalInfix(left, e.Operator, right)
	case *IfExpression:
		return evalIf(e, env)
	}
	return Errorf("unknown expression: %s", expr)
}

func evalPrefix(e *PrefixExpression, env *Env) Value {
	right := evalExpression(e.Right, env)
	if right.Tag == VError {
		return right
	}

	switch e.Operator {
	case "!":
		switch right.Tag {
		case VBoolean:
			return Boolean(!right.Data.(bool))
		case VInteger:
			return Boolean(right.Data.(int64) == 0)
		}
		return Errorf("unknown prefix type: %s", right)
	case "-":
		if right.Tag == VInteger {
			return Integer(-right.Data.(int64))
		}
		return Errorf("unknown operator: -%s", right)
	}
	return Errorf("unknown prefix type: %s", right)
}

func evalInfix(left Value, op string, right Value) Value {
	if left.Tag == VInteger && right.Tag == VInteger {
		li := left.Data.(int64)
		ri := right.Data.(int64)
		switch op {
		case "+":
			return Integer(li + ri)
		case "-":
			return Integer(li - ri)
		case "*":
			return Integer(li * ri)
		case "/":
			if ri == 0 {
				return Errorf("division by zero: %s / %s", left, right)
			}
			return Integer(li / ri)
		case "<":
			return Boolean(li < ri)
		case ">":
			return Boolean(li > ri)
		case "==":
			return Boolean(li == ri)
		case "!=":
			return Boolean(li != ri)
		}
	}

	// Only structural (in)equality is defined outside integer pairs; mixed
	// kinds compare unequal rather than erroring.
	switch op {
	case "==":
		return Boolean(valuesEqual(left, right))
	case "!=":
		return Boolean(!valuesEqual(left, right))
	}

	return Errorf("mismatch expression operation: %s %s %s", left, op, right)
}

// evalIf applies the truthiness rule: boolean true takes the consequence,
// boolean false and null take the alternative (or null), and any other
// condition kind is treated as truthy.
func evalIf(e *IfExpression, env *Env) Value {
	cond := evalExpression(e.Condition, env)
	if cond.Tag == VError {
		return cond
	}

	switch {
	case cond.Tag == VBoolean && cond.Data.(bool):
		return evalBlock(e.Consequence, env)
	case cond.Tag == VBoolean || cond.Tag == VNull:
		if e.Alternative != nil {
			return evalBlock(e.Alternative, env)
		}
		return Null
	default:
		return evalBlock(e.Consequence, env)
	}
}
