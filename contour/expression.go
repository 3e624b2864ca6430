// SPDX-License-Identifier: MIT

package contour

import (
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
)

// VariableX is the only parameter name an expression may reference.
const VariableX = "x"

// expressionFunctions are the math helpers available inside expressions.
var expressionFunctions = map[string]govaluate.ExpressionFunction{
	"sqrt": unary("sqrt", math.Sqrt),
	"exp":  unary("exp", math.Exp),
	"tanh": unary("tanh", math.Tanh),
	"sin":  unary("sin", math.Sin),
	"cos":  unary("cos", math.Cos),
	"abs":  unary("abs", math.Abs),
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("contour: got %d arguments for function '%s', but needs 1", len(args), name)
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("contour: argument of '%s' is %T, not a number", name, args[0])
		}
		return fn(v), nil
	}
}

// Expression compiles a formula in x, such as "1 - x**2/10" or
// "0.5 + 0.25*tanh(4*(x-1))", into a contour.
//
// The resulting Func returns NaN when evaluation fails at some x, so callers
// that reject non-finite heights surface the failure instead of hiding it.
func Expression(src string) (Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("empty expression: %w", ErrBadExpression)
	}
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, expressionFunctions)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", src, err, ErrBadExpression)
	}
	for _, v := range expr.Vars() {
		if v != VariableX {
			return nil, fmt.Errorf("%q: unknown variable %q: %w", src, v, ErrBadExpression)
		}
	}

	return func(x float64) float64 {
		out, err := expr.Evaluate(map[string]interface{}{VariableX: x})
		if err != nil {
			return math.NaN()
		}
		h, ok := out.(float64)
		if !ok {
			return math.NaN()
		}
		return h
	}, nil
}
