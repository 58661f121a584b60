package eval

import (
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

var arithOps = map[parse.TokenKind]func(x, y vals.Value) (vals.Value, error){
	parse.Plus:         vals.Add,
	parse.Minus:        vals.Sub,
	parse.Star:         vals.Mul,
	parse.Slash:        vals.Div,
	parse.Percent:      vals.Mod,
	parse.Caret:        vals.Pow,
	parse.Less:         vals.Less,
	parse.Greater:      vals.Greater,
	parse.LessEqual:    vals.LessEq,
	parse.GreaterEqual: vals.GreaterEq,
}

// Applies a binary operator other than and/or, which need to control the
// evaluation of their operands.
func binaryOp(op parse.TokenKind, x, y vals.Value) (vals.Value, error) {
	switch op {
	case parse.Equal:
		return vals.Bool(vals.Equal(x, y)), nil
	case parse.NotEqual:
		return vals.Bool(!vals.Equal(x, y)), nil
	}
	f, ok := arithOps[op]
	if !ok {
		panic("unexpected binary operator " + op.String())
	}
	return f(x, y)
}
