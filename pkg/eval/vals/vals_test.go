package vals

import (
	"testing"

	"github.com/aap-lang/aap/pkg/eval/errs"
	"github.com/aap-lang/aap/pkg/tt"
)

func TestBool(t *testing.T) {
	tt.Test(t, tt.Fn("Bool", Bool), tt.Table{
		tt.Args(true).Rets(true),
		tt.Args(false).Rets(false),
		tt.Args(0).Rets(false),
		tt.Args(1).Rets(true),
		tt.Args(-1).Rets(true),
		tt.Args("").Rets(false),
		tt.Args("0").Rets(true),
		tt.Args("x").Rets(true),
	})
}

func TestToString(t *testing.T) {
	tt.Test(t, tt.Fn("ToString", ToString), tt.Table{
		tt.Args(42).Rets("42"),
		tt.Args(-7).Rets("-7"),
		tt.Args("hi").Rets("hi"),
		tt.Args(true).Rets("true"),
		tt.Args(false).Rets("false"),
	})
}

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("Kind", Kind), tt.Table{
		tt.Args(1).Rets("number"),
		tt.Args("x").Rets("string"),
		tt.Args(true).Rets("boolean"),
	})
}

func TestCompare(t *testing.T) {
	tt.Test(t, tt.Fn("Compare", Compare), tt.Table{
		tt.Args("==", 1, 1).Rets(true, nil),
		tt.Args("==", 1, 2).Rets(false, nil),
		tt.Args("==", "a", "a").Rets(true, nil),
		// Equality across kinds is false rather than an error.
		tt.Args("==", 1, "1").Rets(false, nil),
		// Booleans compare as 0 and 1.
		tt.Args("==", true, 1).Rets(true, nil),
		tt.Args("==", false, 0).Rets(true, nil),
		tt.Args("!=", 1, 2).Rets(true, nil),
		tt.Args("<", 1, 2).Rets(true, nil),
		tt.Args(">", 1, 2).Rets(false, nil),
		tt.Args("<=", 2, 2).Rets(true, nil),
		tt.Args(">=", 1, 2).Rets(false, nil),
		tt.Args("<", true, 2).Rets(true, nil),
		tt.Args("<", "a", "b").Rets(true, nil),
		tt.Args(">", "b", "a").Rets(true, nil),
		tt.Args("<", 1, "a").Rets(false, errs.BadValue{
			What: "operands of <", Valid: "two numbers or two strings",
			Actual: "number and string"}),
		tt.Args(">=", "a", true).Rets(false, errs.BadValue{
			What: "operands of >=", Valid: "two numbers or two strings",
			Actual: "string and boolean"}),
	})
}
