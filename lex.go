package rpn

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Lexer scans tokens from a character stream. The only state it keeps is
// the cursor position, so scanning the same input from the same position
// always gives the same tokens.
type Lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

// NewLexer creates a lexer reading from src.
func NewLexer(src io.RuneScanner) *Lexer {
	return &Lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *Lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *Lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// Next scans the next token from the input. The first time the end of the
// input is reached, the result is a TokEOF token with a nil error.
// Subsequent times, the result is an empty token with io.EOF.
func (l *Lexer) Next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = TokEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				tok.Text = l.buf.String()
				tok.Kind = TokError
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokNum
			return tok, nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			l.scanIdent()
			tok.Text = l.buf.String()
			// The logical word operators look like identifiers, so check
			// for them here.
			switch tok.Text {
			case "not":
				tok.Kind = TokNot
			case "and":
				tok.Kind = TokAnd
			case "or":
				tok.Kind = TokOr
			default:
				tok.Kind = TokSym
			}
			return tok, nil
		case r == '+':
			return l.emit(tok, "+", TokPlus), nil
		case r == '-':
			return l.emit(tok, "-", TokMinus), nil
		case r == '*':
			return l.emit(tok, "*", TokStar), nil
		case r == '/':
			return l.emit(tok, "/", TokSlash), nil
		case r == '%':
			return l.emit(tok, "%", TokPercent), nil
		case r == '^':
			return l.emit(tok, "^", TokCaret), nil
		case r == '(':
			return l.emit(tok, "(", TokOpen), nil
		case r == ')':
			return l.emit(tok, ")", TokClose), nil
		case r == '<':
			if l.peekEq() {
				return l.emit(tok, "<=", TokLessEq), nil
			}
			return l.emit(tok, "<", TokLess), nil
		case r == '>':
			if l.peekEq() {
				return l.emit(tok, ">=", TokGreaterEq), nil
			}
			return l.emit(tok, ">", TokGreater), nil
		case r == '=':
			if l.peekEq() {
				return l.emit(tok, "==", TokEqual), nil
			}
			return l.emit(tok, "=", TokAssign), nil
		case r == '!':
			if l.peekEq() {
				return l.emit(tok, "!=", TokNotEqual), nil
			}
			return l.emit(tok, "!", TokNot), nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			tok.Text = l.buf.String()
			tok.Kind = TokError
			return tok, l.error("")
		}
	}
}

// emit fills in an operator token.
func (l *Lexer) emit(tok Token, text string, kind Kind) Token {
	tok.Text = text
	tok.Kind = kind
	return tok
}

// peekEq reports whether the next rune is '=', consuming it if so. This is
// the one-rune lookahead that splits <= >= == != from their one-character
// forms.
func (l *Lexer) peekEq() bool {
	r, err := l.readRune()
	if err != nil {
		return false
	}
	if r == '=' {
		return true
	}
	l.unreadRune()
	return false
}

// scanNum scans a maximal run of digits and decimal points. A run with no
// digits or more than one point is an invalid number.
func (l *Lexer) scanNum() error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				l.buf.WriteRune(r)
				return l.error("number")
			}
			dot = true
		default:
			l.unreadRune()
			if !dig {
				return l.error("number")
			}
			return nil
		}
		l.buf.WriteRune(r)
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

// scanIdent scans a maximal run of letters and underscores.
func (l *Lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// Next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		switch {
		case r == '_', unicode.IsLetter(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return
		}
	}
}

func (l *Lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be
	// "number" or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
