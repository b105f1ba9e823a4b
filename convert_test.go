package rpn

import (
	"reflect"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "3", "3"},
		{"sym", "x", "x"},
		{"add", "1 + 2", "1 2 +"},
		{"precedence", "3 + 4 * 2", "3 4 2 * +"},
		{"parens", "(1 + 2) * 3", "1 2 + 3 *"},
		{"nested-parens", "((1 + 2))", "1 2 +"},
		{"sub-left", "4 - 5 - 6", "4 5 - 6 -"},
		{"div-left", "8 / 4 / 2", "8 4 / 2 /"},
		{"pow-right", "2 ^ 3 ^ 2", "2 3 2 ^ ^"},
		{"mod", "7 % 3", "7 3 %"},
		{"unary-minus", "-3 + 5", "3 - 5 +"},
		{"unary-chain", "3 - -5", "3 5 - -"},
		{"unary-pow", "-3 ^ 2", "3 2 ^ -"},
		{"pow-neg-exp", "3 ^ -5", "3 5 - ^"},
		{"double-unary", "- -5", "5 - -"},
		{"cmp", "1 < 2 == 3 < 4", "1 2 < 3 4 < =="},
		{"cmp-mixed", "1 + 2 <= 3 * 4", "1 2 + 3 4 * <="},
		{"logic", "1 and 0 or 1", "1 0 and 1 or"},
		{"not-binds-tight", "not 1 and 0", "1 not 0 and"},
		{"not-parens", "not (1 and 0)", "1 0 and not"},
		{"assign", "a = 12 + 3 * (4 - 1)", "a 12 3 4 1 - * + ="},
		{"assign-chain", "a = b = 3", "a b 3 = ="},
		{"assign-cmp", "a = 1 < 2", "a 1 2 < ="},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ConvertString(c.src)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := p.String(); got != c.want {
				t.Errorf("%q converted wrong:\n\twant %q\n\tgot  %q", c.src, c.want, got)
			}
		})
	}
}

func TestConvertArity(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		unary []bool // per token of the postfix sequence
	}{
		{"binary-minus", "3 - 5", []bool{false, false, false}},
		{"unary-minus", "-5", []bool{false, true}},
		{"both", "3 - -5", []bool{false, false, true, false}},
		{"after-open", "3 * (-5)", []bool{false, false, true, false}},
		{"after-operator", "3 ^ -5", []bool{false, false, true, false}},
		{"not", "not 0", []bool{false, true}},
		{"bang", "!0", []bool{false, true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ConvertString(c.src)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if len(p) != len(c.unary) {
				t.Fatalf("%q converted to %d tokens (%v), want %d", c.src, len(p), p, len(c.unary))
			}
			for i, want := range c.unary {
				if p[i].Unary != want {
					t.Errorf("%q: token %v has unary=%t, want %t", c.src, p[i], p[i].Unary, want)
				}
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"unclosed", "(1 + 2", &BracketError{}},
		{"unclosed-nested", "((1 + 2)", &BracketError{}},
		{"unmatched", "1 + 2)", &BracketError{}},
		{"empty", "", &EmptyExpressionError{}},
		{"empty-space", " \t ", &EmptyExpressionError{}},
		{"empty-parens", "()", &UnexpectedTokenError{}},
		{"trailing-op", "1 +", &UnexpectedTokenError{}},
		{"binary-start", "* 3", &UnexpectedTokenError{}},
		{"double-op", "1 * / 2", &UnexpectedTokenError{}},
		{"adjacent-operands", "1 2", &UnexpectedTokenError{}},
		{"binary-not", "1 not 2", &UnexpectedTokenError{}},
		{"unary-star", "1 + * 2", &UnexpectedTokenError{}},
		{"close-after-op", "(1 +)", &UnexpectedTokenError{}},
		{"bad-char", "1 $ 2", &LexError{}},
		{"bad-number", "1.2.3", &LexError{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ConvertString(c.src)
			if err == nil {
				t.Fatalf("%q converted to %v, want an error", c.src, p)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("%q gave %#v, want a %T", c.src, err, c.err)
			}
			ie, ok := err.(InputError)
			if !ok {
				t.Fatalf("%q gave %#v, which is not an InputError", c.src, err)
			}
			if ie.Pos() < 1 {
				t.Errorf("%q gave error with position %d", c.src, ie.Pos())
			}
		})
	}
}

func TestConvertIdempotent(t *testing.T) {
	srcs := []string{
		"3 + 4 * 2",
		"a = b = 3",
		"-(x + y) ^ 2 % 7",
		"not a and b or c != d",
	}
	for _, src := range srcs {
		first, err := ConvertString(src)
		if err != nil {
			t.Fatalf("%q failed to convert: %v", src, err)
		}
		second, err := ConvertString(src)
		if err != nil {
			t.Fatalf("%q failed to convert again: %v", src, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%q converted differently:\n\tfirst  %v\n\tsecond %v", src, first, second)
		}
	}
}

func TestOpPrecsExist(t *testing.T) {
	kinds := []Kind{
		TokPlus, TokMinus, TokStar, TokSlash, TokPercent, TokCaret,
		TokLess, TokGreater, TokLessEq, TokGreaterEq, TokEqual, TokNotEqual,
		TokAssign, TokNot, TokAnd, TokOr,
	}
	for _, k := range kinds {
		if _, bok := binop(k); !bok {
			if _, uok := unop(k); !uok {
				t.Errorf("no operator for %v", k)
			}
		}
	}
	if _, ok := binop(TokNum); ok {
		t.Error("Num has a binary operator")
	}
	if _, ok := unop(TokOpen); ok {
		t.Error("Open has a unary operator")
	}
}

func TestPostfixString(t *testing.T) {
	p, err := Convert(strings.NewReader("a = 12 + 3 * (4 - 1)"))
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "a 12 3 4 1 - * + =" {
		t.Errorf("wrong postfix rendering: %q", got)
	}
	if got := Postfix(nil).String(); got != "" {
		t.Errorf("empty postfix renders as %q", got)
	}
}
