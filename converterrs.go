package rpn

import "strconv"

// UnexpectedTokenError is an error indicating a token in a position where
// the grammar does not allow it, such as a binary operator at the start of
// an expression. It implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the offending token text, or the empty string if the
	// expression ended where more input was expected.
	Token string
	// Operand is whether the converter expected an operand at the time.
	Operand bool
}

func (err *UnexpectedTokenError) Error() string {
	want := "operator"
	if err.Operand {
		want = "operand"
	}
	if err.Token == "" {
		return errpos(err.Col, "expected "+want+" at end of expression")
	}
	return errpos(err.Col, "expected "+want+", found "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" for an open parenthesis with no close.
	Left string
	// Right is ")" for a close parenthesis with no open.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis with no close parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that the input held no
// expression at all. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position at which the input ended.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*AssignTargetError)(nil)
	_ InputError = (*DivisionError)(nil)
)
