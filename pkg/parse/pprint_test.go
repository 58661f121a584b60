package parse

import (
	"testing"

	"github.com/keyplexex/itmoscript/pkg/tt"
)

func pprintCode(code string) string {
	prog, err := Parse(Source{Name: "[test]", Code: code})
	if err != nil {
		panic(err)
	}
	return PprintString(prog)
}

func TestPprint(t *testing.T) {
	tt.Test(t, tt.Fn("pprintCode", pprintCode), tt.Table{
		tt.Args("x = 1\nif x then\n  print(\"hi\")\nend if").Rets(
			`Program (line 1)
  ExprStmt (line 1)
    AssignExpr Op="=" (line 1)
      Target: Ident Name="x" (line 1)
      Value: NumberLit Value=1 (line 1)
  IfStmt (line 2)
    Cond: Ident Name="x" (line 2)
    Then: Block (line 3)
      ExprStmt (line 3)
        CallExpr (line 3)
          Callee: Ident Name="print" (line 3)
          StringLit Value="hi" (line 3)
`),
		tt.Args("f = function(a, b) return -a end function").Rets(
			`Program (line 1)
  ExprStmt (line 1)
    AssignExpr Op="=" (line 1)
      Target: Ident Name="f" (line 1)
      Value: FuncLit Params=(a, b) (line 1)
        Block (line 1)
          ReturnStmt (line 1)
            UnaryExpr Op="-" (line 1)
              Ident Name="a" (line 1)
`),
		tt.Args("for c in s[1:]\n  continue\nend for").Rets(
			`Program (line 1)
  ForStmt Var="c" (line 1)
    Iterable: SliceExpr (line 1)
      Object: Ident Name="s" (line 1)
      Start: NumberLit Value=1 (line 1)
    Body: Block (line 2)
      ContinueStmt (line 2)
`),
		tt.Args(`["abcdefghijklmnopqrstuvwxyz", nil, true]`).Rets(
			`Program (line 1)
  ExprStmt (line 1)
    ListLit (line 1)
      StringLit Value="abcdefghij...qrstuvwxyz" (line 1)
      NilLit (line 1)
      BoolLit Value=true (line 1)
`),
	})
}
