package rpn

import "strconv"

// Kind classifies a Token.
type Kind int8

const (
	// TokEOF indicates the end of the input.
	TokEOF Kind = iota
	// TokNum is a numeric literal.
	TokNum
	// TokSym is a variable name.
	TokSym
	// Single-character operators.
	TokPlus    // +
	TokMinus   // -
	TokStar    // *
	TokSlash   // /
	TokPercent // %
	TokCaret   // ^
	TokLess    // <
	TokGreater // >
	TokAssign  // =
	TokNot     // ! or the word "not"
	// Two-character operators.
	TokLessEq    // <=
	TokGreaterEq // >=
	TokEqual     // ==
	TokNotEqual  // !=
	// Word operators.
	TokAnd // and
	TokOr  // or
	// Brackets.
	TokOpen  // (
	TokClose // )
	// TokError is a token the lexer could not scan. Its Text carries the
	// offending characters.
	TokError
)

var kindNames = [...]string{
	TokEOF:       "EOF",
	TokNum:       "Num",
	TokSym:       "Sym",
	TokPlus:      "Plus",
	TokMinus:     "Minus",
	TokStar:      "Star",
	TokSlash:     "Slash",
	TokPercent:   "Percent",
	TokCaret:     "Caret",
	TokLess:      "Less",
	TokGreater:   "Greater",
	TokAssign:    "Assign",
	TokNot:       "Not",
	TokLessEq:    "LessEq",
	TokGreaterEq: "GreaterEq",
	TokEqual:     "Equal",
	TokNotEqual:  "NotEqual",
	TokAnd:       "And",
	TokOr:        "Or",
	TokOpen:      "Open",
	TokClose:     "Close",
	TokError:     "Error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single unit of an expression. Tokens are value types; the
// lexer produces them and the converter arranges them into a Postfix
// sequence.
type Token struct {
	// Text is the exact source text of the token.
	Text string
	// Kind is the token's classification.
	Kind Kind
	// Pos is the rune column of the token's first rune, starting at 1.
	Pos int
	// Unary marks an operator token as unary rather than binary. The
	// converter resolves arity; tokens straight from the lexer never have
	// it set.
	Unary bool
}

func (t Token) String() string {
	s := t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
	if t.Unary {
		s += "u"
	}
	return s
}

// operator checks whether the token can appear as an operator, either
// arity, anywhere in an expression.
func (t Token) operator() bool {
	switch t.Kind {
	case TokNum, TokSym, TokOpen, TokClose, TokEOF, TokError:
		return false
	}
	return true
}
