// Package evaltest provides a framework for testing aap code.
//
// Test cases are constructed with the That function, followed by method
// calls that add expectations to it:
//
//	Test(t,
//		That("print 1;").Prints("1\n"),
//		That("print x;").Throws(errs.NotDeclared{VarName: "x"}))
package evaltest

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aap-lang/aap/pkg/eval"
	"github.com/aap-lang/aap/pkg/parse"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes []string
	want  result
}

type result struct {
	bytesOut  []byte
	exception error
}

// That returns a new Case with the specified source code. Multiple
// arguments are joined with newlines.
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that additionally evaluates the given code as a
// separate top-level input on the same Evaler, for testing state carried
// across inputs.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// Prints returns an altered Case that requires the code to produce the
// given output from print statements.
func (c Case) Prints(s string) Case {
	c.want.bytesOut = []byte(s)
	return c
}

// DoesNothing returns c unchanged. It marks cases whose entire point is
// that they print nothing and throw nothing.
func (c Case) DoesNothing() Case {
	return c
}

// Throws returns an altered Case that requires evaluation to fault with
// the given reason. The reason may be a matcher constructed by
// ErrorWithType.
func (c Case) Throws(reason error) Case {
	c.want.exception = reason
	return c
}

// ErrorWithType returns a matcher that matches any error with the same
// dynamic type as v.
func ErrorWithType(v error) error { return errWithType{v} }

type errWithType struct{ v error }

func (e errWithType) Error() string { return "error with type " + reflect.TypeOf(e.v).String() }

func (e errWithType) matchError(other error) bool {
	return other != nil && reflect.TypeOf(e.v) == reflect.TypeOf(other)
}

type errorMatcher interface{ matchError(error) bool }

// Test runs test cases. Each case gets a fresh Evaler; the pieces of code
// added with Then run on the same Evaler in order.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, " | "), func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			var out bytes.Buffer
			var exception error
			for i, code := range tc.codes {
				name := "[test]"
				if len(tc.codes) > 1 {
					name = fmt.Sprintf("[test %d]", i+1)
				}
				err := ev.Eval(parse.Source{Name: name, Code: code},
					eval.EvalCfg{Out: &out})
				if err != nil {
					exception = err
				}
			}

			if !bytes.Equal(out.Bytes(), tc.want.bytesOut) {
				t.Errorf("output (-want +got):\n%s",
					cmp.Diff(string(tc.want.bytesOut), out.String()))
			}
			if !matchErr(tc.want.exception, exception) {
				t.Errorf("got exception %v (reason %T), want %v",
					exception, eval.Reason(exception), tc.want.exception)
			}
		})
	}
}

func matchErr(want, got error) bool {
	if want == nil {
		return got == nil
	}
	if matcher, ok := want.(errorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(eval.Reason(got), want)
}
