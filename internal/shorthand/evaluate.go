// Package shorthand parses the compact "reason mode amount" command line a
// user types to record a transaction. Parsing never fails with an error;
// incomplete or malformed input produces a ParsedInput with IsValid false so
// the caller can render a not-ready state while the user keeps typing.
package shorthand

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate computes a restricted arithmetic expression found in the amount
// field. Supported operators are + - * / over signed decimal operands;
// multiplication and division bind tighter than addition and subtraction.
// Thousands separators inside operands are ignored.
//
// Returns false for malformed expressions, division by zero, and results
// that are not finite and positive.
func Evaluate(expr string) (float64, bool) {
	vals, ops, ok := lexExpression(expr)
	if !ok {
		return 0, false
	}

	// First pass collapses * and / into their left operand.
	terms := []float64{vals[0]}
	var addOps []byte
	for i, op := range ops {
		rhs := vals[i+1]
		switch op {
		case '*':
			terms[len(terms)-1] *= rhs
		case '/':
			if rhs == 0 {
				return 0, false
			}
			terms[len(terms)-1] /= rhs
		default:
			addOps = append(addOps, op)
			terms = append(terms, rhs)
		}
	}

	result := terms[0]
	for i, op := range addOps {
		if op == '+' {
			result += terms[i+1]
		} else {
			result -= terms[i+1]
		}
	}

	if math.IsNaN(result) || math.IsInf(result, 0) || result <= 0 {
		return 0, false
	}
	return result, true
}

// lexExpression splits an expression into operand values and the operators
// between them. A - after an operator, and a leading + or -, fold into the
// following operand as its sign; a + after an operator is malformed.
func lexExpression(expr string) ([]float64, []byte, bool) {
	s := strings.TrimSpace(expr)
	var vals []float64
	var ops []byte

	i := 0
	expectOperand := true
	for i < len(s) {
		c := s[i]
		if c == ' ' {
			i++
			continue
		}
		if expectOperand {
			j := i
			if c == '+' || c == '-' {
				if c == '+' && len(ops) > 0 {
					return nil, nil, false
				}
				j++
			}
			start := j
			for j < len(s) && (isDigit(s[j]) || s[j] == '.' || s[j] == ',') {
				j++
			}
			if j == start {
				return nil, nil, false
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(s[i:j], ",", ""), 64)
			if err != nil {
				return nil, nil, false
			}
			vals = append(vals, v)
			i = j
			expectOperand = false
			continue
		}
		switch c {
		case '+', '-', '*', '/':
			ops = append(ops, c)
			expectOperand = true
			i++
		default:
			return nil, nil, false
		}
	}

	// Empty input or a trailing operator leaves an operand pending.
	if expectOperand {
		return nil, nil, false
	}
	return vals, ops, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
