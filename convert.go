package rpn

import (
	"io"
	"strings"
)

// Postfix is an expression in Reverse Polish Notation: an ordered token
// sequence in which every operator follows its operands. A Postfix is
// produced once by Convert and should not be modified afterward.
type Postfix []Token

// String renders the sequence with one space between tokens, the usual
// notation for RPN.
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// operator describes the binding behavior of an operator token.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// moreBinding reports whether an operator binds its operands more tightly
// than the operator at the top of the stack, i.e. whether it should be
// stacked above than rather than popping it.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token kind. If the kind has no
// binary form, then the second result is false.
func binop(k Kind) (operator, bool) {
	switch k {
	case TokAssign:
		return operator{0, true}, true
	case TokOr:
		return operator{1, false}, true
	case TokAnd:
		return operator{2, false}, true
	case TokEqual, TokNotEqual:
		return operator{3, false}, true
	case TokLess, TokGreater, TokLessEq, TokGreaterEq:
		return operator{4, false}, true
	case TokPlus, TokMinus:
		return operator{5, false}, true
	case TokStar, TokSlash, TokPercent:
		return operator{6, false}, true
	case TokCaret:
		return operator{8, true}, true
	default:
		return operator{}, false
	}
}

// unop gets the unary operator for a token kind. If the kind has no unary
// form, then the second result is false.
func unop(k Kind) (operator, bool) {
	switch k {
	case TokMinus, TokNot:
		return operator{7, true}, true
	default:
		return operator{}, false
	}
}

// oper gets the operator for a token whose arity has been resolved.
func oper(tok Token) operator {
	var p operator
	var ok bool
	if tok.Unary {
		p, ok = unop(tok.Kind)
	} else {
		p, ok = binop(tok.Kind)
	}
	if !ok {
		panic("rpn: no operator for token " + tok.String())
	}
	return p
}

// Convert reads one infix expression from src and converts it to postfix
// form with the shunting-yard algorithm. Operator tokens in the result
// have their arity resolved: a minus or not that appeared where an operand
// was expected is marked unary.
func Convert(src io.RuneScanner) (Postfix, error) {
	scan := NewLexer(src)
	var out Postfix
	var ops []Token
	// wantOperand distinguishes the positions where a value may appear
	// from those where a binary operator may. It is what resolves -x
	// against x-y.
	wantOperand := true
	for {
		tok, err := scan.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokEOF:
			if wantOperand {
				if len(out) == 0 && len(ops) == 0 {
					return nil, &EmptyExpressionError{Col: tok.Pos}
				}
				return nil, &UnexpectedTokenError{Col: tok.Pos, Operand: true}
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokOpen {
					return nil, &BracketError{Col: top.Pos, Left: "("}
				}
				out = append(out, top)
			}
			return out, nil
		case TokNum, TokSym:
			if !wantOperand {
				return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
			}
			out = append(out, tok)
			wantOperand = false
		case TokOpen:
			if !wantOperand {
				return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
			}
			ops = append(ops, tok)
		case TokClose:
			if wantOperand {
				return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text, Operand: true}
			}
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: ")"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokOpen {
					break
				}
				out = append(out, top)
			}
		default:
			if wantOperand {
				// Unary operator. Everything on the stack is still waiting
				// for its right operand, so there is nothing to pop.
				if _, ok := unop(tok.Kind); !ok {
					return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text, Operand: true}
				}
				tok.Unary = true
				ops = append(ops, tok)
				continue
			}
			prec, ok := binop(tok.Kind)
			if !ok {
				return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == TokOpen || prec.moreBinding(oper(top)) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
			wantOperand = true
		}
	}
}

// ConvertString is a shortcut to convert a string expression.
func ConvertString(src string) (Postfix, error) {
	return Convert(strings.NewReader(src))
}
