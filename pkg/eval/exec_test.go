package eval_test

import (
	"testing"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	. "github.com/keyplexex/itmoscript/pkg/eval/evaltest"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

func TestIf(t *testing.T) {
	Test(t,
		That(
			"x = 5",
			"if x > 3 then",
			`  r = "big"`,
			"else",
			`  r = "small"`,
			"end if").DoesNothing(),
		That(
			`r = ""`,
			"for x in [1, 5, 10]",
			"  if x < 3 then",
			`    r += "a"`,
			"  else if x < 7 then",
			`    r += "b"`,
			"  else",
			`    r += "c"`,
			"  end if",
			"end for",
			"r").Puts("abc"),
		// Variables defined in a branch are local to it.
		That("if true then", "  inner = 1", "end if", "inner").
			Throws(errs.NoSuchVariable{Name: "inner"}),
		// Assignment updates the enclosing binding when there is one.
		That("v = 1", "if true then", "  v = 2", "end if", "v").Puts(2),
	)
}

func TestWhile(t *testing.T) {
	Test(t,
		// Breaking on iteration k runs exactly k bodies.
		That(
			"n = 0",
			"while true",
			"  n = n + 1",
			"  if n == 3 then",
			"    break",
			"  end if",
			"end while",
			"n").Puts(3),
		That(
			"i = 0",
			`out = ""`,
			"while i < 5",
			"  i += 1",
			"  if i % 2 == 0 then",
			"    continue",
			"  end if",
			"  out += to_string(i)",
			"end while",
			"out").Puts("135"),
		That("while false", "  1 / 0", "end while").DoesNothing(),
		// Each iteration gets a fresh scope.
		That(
			"i = 0",
			"while i < 2",
			"  i += 1",
			"  if i == 2 then",
			"    println(seen)",
			"  end if",
			"  seen = i",
			"end while").Throws(errs.NoSuchVariable{Name: "seen"}, "while (line 2)"),
	)
}

func TestFor(t *testing.T) {
	Test(t,
		That(`s = ""`, `for c in "abc"`, "  s = c + s", "end for", "s").Puts("cba"),
		That(
			`out = ""`,
			"for i in range(5)",
			"  if i % 2 == 0 then",
			"    continue",
			"  end if",
			"  out = out + to_string(i)",
			"end for",
			"out").Puts("13"),
		That(
			"total = 0",
			"for x in [1, 2, 3, 4]",
			"  if x == 3 then",
			"    break",
			"  end if",
			"  total += x",
			"end for",
			"total").Puts(3),
		// The loop iterates over a snapshot of the list.
		That("L = [1, 2]", "for x in L", "  push(L, x)", "end for", "L").
			Puts(vals.MakeList(vals.Num(1), vals.Num(2), vals.Num(1), vals.Num(2))),
		// The loop variable is local to the body.
		That("for x in [1]", "end for", "x").Throws(errs.NoSuchVariable{Name: "x"}),
		That("for x in 5", "end for").Throws(errs.NotIterable{Value: "5"}),
		That("for x in nil", "end for").Throws(errs.NotIterable{Value: "nil"}),
		That("for x in [1]", "  1 / 0", "end for").
			Throws(errs.DivisionByZero{Op: vals.OpDiv}, "for (line 1)"),
		That("for x in [[1, 2], [3]]", "  for y in x", "    print(y)", "  end for", "end for").
			Prints("123"),
	)
}

func TestReturnUnwindsLoops(t *testing.T) {
	Test(t,
		That(
			"find = function(L, v)",
			"  i = 0",
			"  for x in L",
			"    while true",
			"      if x == v then",
			"        return i",
			"      end if",
			"      break",
			"    end while",
			"    i += 1",
			"  end for",
			"  return -1",
			"end function",
			`find(["a", "b", "c"], "c")`,
			`find(["a"], "z")`,
			"stacktrace()").
			Puts(2, -1, vals.MakeList(vals.Str(`function "<builtin stacktrace>" (line 16)`))),
	)
}
