package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
)

// CalcError is what NeoCalc shows for any input it cannot evaluate.
const CalcError = "Error"

// Evaluate computes an arithmetic expression such as "2 * (3 + 4)".
// Variables and function calls are not available.
func Evaluate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty expression")
	}

	program, err := expr.Compile(input, expr.Env(map[string]any{}), expr.DisableAllBuiltins())
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	result, err := expr.Run(program, map[string]any{})
	if err != nil {
		return "", fmt.Errorf("evaluation failed: %w", err)
	}

	switch v := result.(type) {
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return "", fmt.Errorf("division by zero")
		}
		return formatFloat(v), nil
	case int, int64, bool:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("unsupported result type %T", result)
}

// CalcResult returns the text shown for input: the value, or CalcError.
func CalcResult(input string) string {
	out, err := Evaluate(input)
	if err != nil {
		return CalcError
	}
	return out
}

func formatFloat(v float64) string {
	if v == float64(int64(v)) && v < 1e15 && v > -1e15 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%g", v)
}
