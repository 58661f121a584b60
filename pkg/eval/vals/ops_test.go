package vals

import (
	"testing"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/tt"
)

func typeErr(op string, kinds ...Kind) error {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.TypeName()
	}
	return errs.TypeError{Op: op, Operands: names}
}

func TestAdd(t *testing.T) {
	tt.Test(t, tt.Fn("Add", Add), tt.Table{
		tt.Args(Num(1), Num(2)).Rets(Num(3), nil),
		tt.Args(Str("ab"), Str("cd")).Rets(Str("abcd"), nil),
		tt.Args(Str("ab"), Str("")).Rets(Str("ab"), nil),
		tt.Args(MakeList(Num(1)), MakeList(Num(2), Num(3))).Rets(
			MakeList(Num(1), Num(2), Num(3)), nil),
		tt.Args(Num(1), Str("a")).Rets(Nil, typeErr(OpAdd, NumberKind, StringKind)),
		tt.Args(Nil, Bool(true)).Rets(Nil, typeErr(OpAdd, NilKind, BoolKind)),
	})
}

func TestAdd_ListResultIsNew(t *testing.T) {
	a, b := MakeList(Num(1)), MakeList(Num(2))
	sum, _ := Add(a, b)
	sum.List().Append(Num(3))
	if a.List().Len() != 1 || b.List().Len() != 1 {
		t.Errorf("appending to the sum changed an operand")
	}
}

func TestSub(t *testing.T) {
	tt.Test(t, tt.Fn("Sub", Sub), tt.Table{
		tt.Args(Num(5), Num(7)).Rets(Num(-2), nil),
		tt.Args(Str("hello"), Str("l")).Rets(Str("helo"), nil),
		tt.Args(Str("hello"), Str("z")).Rets(Str("hello"), nil),
		tt.Args(Str("hello"), Str("")).Rets(Str("hello"), nil),
		tt.Args(MakeList(), MakeList()).Rets(Nil, typeErr(OpSub, ListKind, ListKind)),
	})
}

func TestMul(t *testing.T) {
	tt.Test(t, tt.Fn("Mul", Mul), tt.Table{
		tt.Args(Num(3), Num(4)).Rets(Num(12), nil),
		tt.Args(Bool(true), Num(4)).Rets(Num(4), nil),
		tt.Args(Bool(true), Bool(false)).Rets(Num(0), nil),
		tt.Args(Str("abc"), Num(2.5)).Rets(Str("abcabcab"), nil),
		tt.Args(Num(2), Str("ab")).Rets(Str("abab"), nil),
		tt.Args(Str("abc"), Num(0.1)).Rets(Str("a"), nil),
		tt.Args(Str("abc"), Num(0)).Rets(Str(""), nil),
		tt.Args(Str("abc"), Num(-1)).Rets(Str(""), nil),
		tt.Args(Str("ab"), Bool(true)).Rets(Str("ab"), nil),
		tt.Args(MakeList(Num(1), Num(2)), Num(0)).Rets(MakeList(), nil),
		tt.Args(MakeList(Num(1), Num(2)), Num(1.5)).Rets(
			MakeList(Num(1), Num(2), Num(1)), nil),
		tt.Args(Num(2), MakeList(Str("x"))).Rets(MakeList(Str("x"), Str("x")), nil),
		tt.Args(Str("a"), Str("b")).Rets(Nil, typeErr(OpMul, StringKind, StringKind)),
		tt.Args(Nil, Num(2)).Rets(Nil, typeErr(OpMul, NilKind, NumberKind)),
		tt.Args(Bool(true), Nil).Rets(Nil, typeErr(OpMul, BoolKind, NilKind)),
	})
}

func TestMul_RejectsHugeResults(t *testing.T) {
	_, err := Mul(Str("ab"), Num(1e12))
	if _, ok := err.(errs.BadValue); !ok {
		t.Errorf("got error %v, want errs.BadValue", err)
	}
}

func TestDivModPow(t *testing.T) {
	tt.Test(t, tt.Fn("Div", Div), tt.Table{
		tt.Args(Num(7), Num(2)).Rets(Num(3.5), nil),
		tt.Args(Num(1), Num(0)).Rets(Nil, errs.DivisionByZero{Op: OpDiv}),
		tt.Args(Str("a"), Num(1)).Rets(Nil, typeErr(OpDiv, StringKind, NumberKind)),
	})
	tt.Test(t, tt.Fn("Mod", Mod), tt.Table{
		tt.Args(Num(7), Num(3)).Rets(Num(1), nil),
		tt.Args(Num(-7), Num(3)).Rets(Num(-1), nil),
		tt.Args(Num(5.5), Num(2)).Rets(Num(1.5), nil),
		tt.Args(Num(1), Str("a")).Rets(Nil, typeErr(OpMod, NumberKind, StringKind)),
	})
	tt.Test(t, tt.Fn("Pow", Pow), tt.Table{
		tt.Args(Num(2), Num(10)).Rets(Num(1024), nil),
		tt.Args(Num(4), Num(0.5)).Rets(Num(2), nil),
		tt.Args(Bool(true), Num(1)).Rets(Nil, typeErr(OpPow, BoolKind, NumberKind)),
	})
}

func TestComparisons(t *testing.T) {
	tt.Test(t, tt.Fn("Less", Less), tt.Table{
		tt.Args(Num(1), Num(2)).Rets(Bool(true), nil),
		tt.Args(Num(2), Num(2)).Rets(Bool(false), nil),
		tt.Args(Str("a"), Str("b")).Rets(Bool(true), nil),
		tt.Args(Str("b"), Str("abc")).Rets(Bool(false), nil),
		tt.Args(Num(1), Str("2")).Rets(Nil, typeErr(OpLess, NumberKind, StringKind)),
	})
	tt.Test(t, tt.Fn("Greater", Greater), tt.Table{
		tt.Args(Num(3), Num(2)).Rets(Bool(true), nil),
		tt.Args(Bool(true), Bool(false)).Rets(Nil, typeErr(OpGreater, BoolKind, BoolKind)),
	})
	tt.Test(t, tt.Fn("LessEq", LessEq), tt.Table{
		tt.Args(Num(2), Num(2)).Rets(Bool(true), nil),
		tt.Args(Str("b"), Str("a")).Rets(Bool(false), nil),
	})
	tt.Test(t, tt.Fn("GreaterEq", GreaterEq), tt.Table{
		tt.Args(Str("b"), Str("b")).Rets(Bool(true), nil),
		tt.Args(MakeList(), MakeList()).Rets(Nil, typeErr(OpGreaterEq, ListKind, ListKind)),
	})
}

func TestUnary(t *testing.T) {
	tt.Test(t, tt.Fn("Neg", Neg), tt.Table{
		tt.Args(Num(2)).Rets(Num(-2), nil),
		tt.Args(Str("a")).Rets(Nil, typeErr(OpNeg, StringKind)),
	})
	tt.Test(t, tt.Fn("Pos", Pos), tt.Table{
		tt.Args(Num(2)).Rets(Num(2), nil),
		tt.Args(Nil).Rets(Nil, typeErr(OpPos, NilKind)),
	})
	tt.Test(t, tt.Fn("Not", Not), tt.Table{
		tt.Args(Num(0)).Rets(Bool(true)),
		tt.Args(Str("a")).Rets(Bool(false)),
		tt.Args(Nil).Rets(Bool(true)),
		tt.Args(MakeList()).Rets(Bool(true)),
	})
}

func TestStringConcatIdentityAndAssociativity(t *testing.T) {
	strs := []string{"", "a", "hello", "x y z"}
	for _, a := range strs {
		sum, _ := Add(Str(a), Str(""))
		if !Equal(sum, Str(a)) {
			t.Errorf("%q + \"\" = %s", a, Repr(sum))
		}
		for _, b := range strs {
			for _, c := range strs {
				ab, _ := Add(Str(a), Str(b))
				left, _ := Add(ab, Str(c))
				bc, _ := Add(Str(b), Str(c))
				right, _ := Add(Str(a), bc)
				if !Equal(left, right) {
					t.Errorf("(%q + %q) + %q != %q + (%q + %q)", a, b, c, a, b, c)
				}
			}
		}
	}
}
