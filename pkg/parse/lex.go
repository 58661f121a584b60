package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/keyplexex/itmoscript/pkg/diag"
)

// Lexer splits source text into tokens on demand. It cannot be rewound; to
// start over, create a new Lexer.
type Lexer struct {
	src  string
	pos  int
	line int
}

// NewLexer creates a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// AllTokens drains the lexer. The last token is always EOF or Illegal.
func (lx *Lexer) AllTokens() []Token {
	var tokens []Token
	for {
		t := lx.NextToken()
		tokens = append(tokens, t)
		if t.Kind == EOF || t.Kind == Illegal {
			return tokens
		}
	}
}

// NextToken consumes and returns the next token. After reaching the end of
// input, it keeps returning EOF tokens.
func (lx *Lexer) NextToken() Token {
	lx.skipSpaceAndComments()
	begin := lx.pos
	if lx.pos == len(lx.src) {
		return lx.token(EOF, "", begin)
	}

	c := lx.src[lx.pos]
	switch {
	case isIdentStart(c):
		return lx.identifier()
	case isDigit(c) || (c == '.' && isDigit(lx.peekAt(1))):
		return lx.number()
	case c == '"':
		return lx.string()
	}

	lx.pos++
	switch c {
	case '+':
		return lx.withEqual(Plus, PlusAssign, begin)
	case '-':
		return lx.withEqual(Minus, MinusAssign, begin)
	case '*':
		return lx.withEqual(Star, StarAssign, begin)
	case '/':
		return lx.withEqual(Slash, SlashAssign, begin)
	case '%':
		return lx.withEqual(Percent, PercentAssign, begin)
	case '^':
		return lx.withEqual(Caret, CaretAssign, begin)
	case '=':
		return lx.withEqual(Assign, Equal, begin)
	case '<':
		return lx.withEqual(Less, LessEqual, begin)
	case '>':
		return lx.withEqual(Greater, GreaterEqual, begin)
	case '!':
		if lx.eat('=') {
			return lx.fixed(NotEqual, begin)
		}
		return lx.illegal("unexpected character '!'", begin)
	case '(':
		return lx.fixed(LParen, begin)
	case ')':
		return lx.fixed(RParen, begin)
	case '[':
		return lx.fixed(LBracket, begin)
	case ']':
		return lx.fixed(RBracket, begin)
	case ',':
		return lx.fixed(Comma, begin)
	case ':':
		return lx.fixed(Colon, begin)
	}

	r, size := utf8.DecodeRuneInString(lx.src[begin:])
	lx.pos = begin + size
	return lx.illegal("unexpected character '"+string(r)+"'", begin)
}

func (lx *Lexer) skipSpaceAndComments() {
	for lx.pos < len(lx.src) {
		switch c := lx.src[lx.pos]; {
		case c == ' ' || c == '\t' || c == '\r':
			lx.pos++
		case c == '\n':
			lx.line++
			lx.pos++
		case c == '/' && lx.peekAt(1) == '/':
			if i := strings.IndexByte(lx.src[lx.pos:], '\n'); i == -1 {
				lx.pos = len(lx.src)
			} else {
				lx.pos += i
			}
		default:
			return
		}
	}
}

func (lx *Lexer) identifier() Token {
	begin := lx.pos
	lx.skipIdentRun()
	word := lx.src[begin:lx.pos]
	if word == "end" {
		// Block terminators are two words lexed as one token.
		for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t') {
			lx.pos++
		}
		secondBegin := lx.pos
		lx.skipIdentRun()
		word = "end " + lx.src[secondBegin:lx.pos]
		if kind, ok := Keywords[word]; ok && kind >= EndIf && kind <= EndFunction {
			return lx.token(kind, word, begin)
		}
		return lx.illegal("unknown block terminator '"+strings.TrimSpace(word)+"'", begin)
	}
	if kind, ok := Keywords[word]; ok {
		return lx.token(kind, word, begin)
	}
	return lx.token(Identifier, word, begin)
}

func (lx *Lexer) skipIdentRun() {
	for lx.pos < len(lx.src) && isIdentRest(lx.src[lx.pos]) {
		lx.pos++
	}
}

func (lx *Lexer) number() Token {
	begin := lx.pos
	lx.skipDigits()
	if lx.peekAt(0) == '.' && isDigit(lx.peekAt(1)) {
		lx.pos++
		lx.skipDigits()
	}
	if c := lx.peekAt(0); c == 'e' || c == 'E' {
		lx.pos++
		if c := lx.peekAt(0); c == '+' || c == '-' {
			lx.pos++
		}
		if !isDigit(lx.peekAt(0)) {
			return lx.illegal("malformed exponent in number", begin)
		}
		lx.skipDigits()
	}
	return lx.token(Number, lx.src[begin:lx.pos], begin)
}

func (lx *Lexer) skipDigits() {
	for isDigit(lx.peekAt(0)) {
		lx.pos++
	}
}

func (lx *Lexer) string() Token {
	begin := lx.pos
	lx.pos++ // opening quote
	var sb strings.Builder
	for {
		if lx.pos == len(lx.src) {
			return lx.illegal("unterminated string", begin)
		}
		c := lx.src[lx.pos]
		switch c {
		case '"':
			lx.pos++
			return lx.token(String, sb.String(), begin)
		case '\n':
			return lx.illegal("newline in string", begin)
		case '\\':
			lx.pos++
			if lx.pos == len(lx.src) {
				return lx.illegal("unterminated string", begin)
			}
			switch e := lx.src[lx.pos]; e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				// Covers \" and \\ too.
				sb.WriteByte(e)
			}
			lx.pos++
		default:
			sb.WriteByte(c)
			lx.pos++
		}
	}
}

func (lx *Lexer) withEqual(single, double TokenKind, begin int) Token {
	if lx.eat('=') {
		return lx.fixed(double, begin)
	}
	return lx.fixed(single, begin)
}

func (lx *Lexer) eat(c byte) bool {
	if lx.peekAt(0) == c {
		lx.pos++
		return true
	}
	return false
}

func (lx *Lexer) peekAt(offset int) byte {
	if lx.pos+offset < len(lx.src) {
		return lx.src[lx.pos+offset]
	}
	return 0
}

func (lx *Lexer) fixed(kind TokenKind, begin int) Token {
	return lx.token(kind, kind.Text(), begin)
}

func (lx *Lexer) illegal(msg string, begin int) Token {
	return lx.token(Illegal, msg, begin)
}

func (lx *Lexer) token(kind TokenKind, lexeme string, begin int) Token {
	return Token{kind, lexeme, lx.line, diag.Ranging{From: begin, To: lx.pos}}
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isIdentRest(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
