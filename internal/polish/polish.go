// Package polish evaluates arithmetic expressions over [hugeint.Int]
// written in Polish (prefix) notation, such as "* 10 + 7654321 7891234".
package polish

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/hugeint"
)

var (
	errNoTokens          = errors.New("no tokens")
	errNotEnoughOperands = errors.New("not enough operands")
	errTooManyOperands   = errors.New("too many operands")
)

// Operators lists the supported operators.
const Operators = "+ - * /"

// Evaluate computes the value of expr.
// Tokens are separated by white space.
// Operands must be valid for [hugeint.ParseExact].
// Arithmetic wraps around the same way as [hugeint.Int.Add],
// [hugeint.Int.Sub] and [hugeint.Int.Mul] do, and "/" truncates.
func Evaluate(expr string) (hugeint.Int, error) {
	tokens, err := parseTokens(expr)
	if err != nil {
		return hugeint.Int{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return hugeint.Int{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return hugeint.Int{}, fmt.Errorf("post-processed stack contains %v: %w", stack, errTooManyOperands)
	}
	return stack[0], nil
}

func parseTokens(expr string) ([]string, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return nil, errNoTokens
	}
	return tokens, nil
}

// processTokens walks the tokens from right to left, so that every operator
// finds its operands on top of the stack.
func processTokens(tokens []string) ([]hugeint.Int, error) {
	stack := make([]hugeint.Int, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []hugeint.Int, token string) ([]hugeint.Int, error) {
	if len(stack) < 2 {
		return nil, errNotEnoughOperands
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result hugeint.Int
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %s %v\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []hugeint.Int, token string) ([]hugeint.Int, error) {
	x, err := hugeint.ParseExact(token)
	if err != nil {
		return nil, err
	}
	return append(stack, x), nil
}
