package vals

import (
	"testing"

	"github.com/keyplexex/itmoscript/pkg/tt"
)

func TestCompare(t *testing.T) {
	f := Func(&testFn{"f"})
	tt.Test(t, tt.Fn("Compare", Compare), tt.Table{
		tt.Args(Num(1), Num(2)).Rets(-1),
		tt.Args(Num(2), Num(2)).Rets(0),
		tt.Args(Str("b"), Str("a")).Rets(1),
		tt.Args(Bool(false), Bool(true)).Rets(-1),
		tt.Args(MakeList(Num(9)), MakeList(Num(1), Num(2))).Rets(-1),
		tt.Args(Nil, Nil).Rets(0),
		tt.Args(f, Func(&testFn{"g"})).Rets(0),

		tt.Args(Num(100), Str("")).Rets(-1),
		tt.Args(Str(""), Bool(false)).Rets(-1),
		tt.Args(Bool(true), Nil).Rets(-1),
		tt.Args(Nil, MakeList()).Rets(-1),
		tt.Args(MakeList(), f).Rets(-1),
		tt.Args(f, Num(0)).Rets(1),
	})
}
