// Package vals provides operations on the value types of the aap
// language: integers, strings and booleans.
package vals

import (
	"fmt"
	"strconv"

	"github.com/aap-lang/aap/pkg/eval/errs"
)

// Bool converts a value to a boolean: false, 0 and the empty string are
// false, everything else is true.
func Bool(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		return v != ""
	}
	return true
}

// ToString renders a value the way print shows it.
func ToString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprint(v)
}

// Kind returns the kind of a value: "number", "string" or "boolean".
func Kind(v any) string {
	switch v.(type) {
	case int:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}

// Compare applies a comparison operator to two values and returns a
// boolean. Booleans participate as 0 and 1, so that a folded chain of
// comparisons keeps working when an intermediate boolean is compared
// against a number. Ordering a string against a number is an error.
func Compare(op string, a, b any) (bool, error) {
	switch op {
	case "==":
		return equal(a, b), nil
	case "!=":
		return !equal(a, b), nil
	}
	if an, ok := asNum(a); ok {
		if bn, ok := asNum(b); ok {
			return ordered(op, an, bn), nil
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return orderedStr(op, as, bs), nil
		}
	}
	return false, errs.BadValue{
		What:   "operands of " + op,
		Valid:  "two numbers or two strings",
		Actual: Kind(a) + " and " + Kind(b),
	}
}

func equal(a, b any) bool {
	if an, ok := asNum(a); ok {
		if bn, ok := asNum(b); ok {
			return an == bn
		}
	}
	return a == b
}

func asNum(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func ordered(op string, a, b int) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}

func orderedStr(op string, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}
