// Package dice implements the dice expression language: an infix tokenizer,
// a shunting-yard converter to postfix form, and a stack evaluator whose
// per-operand semantics are pluggable (stochastic roll, mean, min, max,
// spread).
package dice

import "fmt"

// Op identifies a binary operator.
type Op int

const (
	OpAdd Op = iota // +
	OpSub           // -
	OpMul           // *
	OpDiv           // /
	OpPow           // ^
)

// Precedence returns the binding strength of the operator. All operators
// are left-associative at equal precedence.
func (o Op) Precedence() int {
	switch o {
	case OpAdd, OpSub:
		return 0
	case OpMul, OpDiv:
		return 1
	case OpPow:
		return 2
	default:
		return -1
	}
}

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "?"
	}
}

// operators maps an operator glyph to its Op.
var operators = map[byte]Op{
	'+': OpAdd,
	'-': OpSub,
	'*': OpMul,
	'/': OpDiv,
	'^': OpPow,
}

// brackets maps each opener glyph to its matching closer. Any opener may
// only be matched by its own closer.
var brackets = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// openerFor returns the opener glyph matching a closer.
func openerFor(closer byte) (byte, bool) {
	for open, cl := range brackets {
		if cl == closer {
			return open, true
		}
	}
	return 0, false
}

func isCloser(ch byte) bool {
	_, ok := openerFor(ch)
	return ok
}

// TokenKind discriminates the two token variants.
type TokenKind int

const (
	TokenOperator TokenKind = iota // binary operator
	TokenOperand                   // signed integer or dice term
)

// Token is one element of a postfix sequence: either a binary operator or a
// signed operand. An operand with Sides == 0 is the plain integer
// Sign*Count; with Sides > 0 it is the dice term Count d Sides.
type Token struct {
	Kind  TokenKind
	Op    Op
	Sign  int // +1 or -1
	Count int
	Sides int
}

// Operator builds an operator token.
func Operator(op Op) Token {
	return Token{Kind: TokenOperator, Op: op}
}

// Integer builds a plain integer operand token.
func Integer(sign, count int) Token {
	return Token{Kind: TokenOperand, Sign: sign, Count: count}
}

// Dice builds a dice-term operand token.
func Dice(sign, count, sides int) Token {
	return Token{Kind: TokenOperand, Sign: sign, Count: count, Sides: sides}
}

// String renders the token in source form, e.g. "+", "-3", "2d6".
func (t Token) String() string {
	if t.Kind == TokenOperator {
		return t.Op.String()
	}
	s := ""
	if t.Sign < 0 {
		s = "-"
	}
	if t.Sides > 0 {
		return fmt.Sprintf("%s%dd%d", s, t.Count, t.Sides)
	}
	return fmt.Sprintf("%s%d", s, t.Count)
}
