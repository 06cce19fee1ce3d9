package dice

import (
	"fmt"
	"math"
)

// Source yields uniformly distributed integers in [0, n). *math/rand.Rand
// satisfies it. The core takes no locks of its own: concurrent evaluations
// are safe only if the Source is.
type Source interface {
	Intn(n int) int
}

// Handler maps one operand to its numeric contribution. Sides is 0 for a
// plain integer operand. During one evaluation pass the handler is invoked
// exactly once per operand token, in left-to-right occurrence order.
type Handler interface {
	Operand(sign, count, sides int, adv, disadv bool) float64
}

// Evaluate reduces a postfix token sequence to a single value, dispatching
// each operand through the handler and each operator through fixed
// arithmetic rules. The advantage and disadvantage directives are passed
// through to the handler untouched.
func Evaluate(postfix []Token, h Handler, adv, disadv bool) (float64, error) {
	var stack []float64

	for _, tok := range postfix {
		if tok.Kind == TokenOperand {
			stack = append(stack, h.Operand(tok.Sign, tok.Count, tok.Sides, adv, disadv))
			continue
		}

		if len(stack) < 2 {
			return 0, newInternal(fmt.Sprintf("operator %q with fewer than two values on the stack", tok.Op))
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var v float64
		switch tok.Op {
		case OpAdd:
			v = a + b
		case OpSub:
			v = a - b
		case OpMul:
			v = a * b
		case OpDiv:
			if b == 0 {
				return 0, newDivisionByZero()
			}
			v = a / b
		case OpPow:
			v = math.Pow(a, b)
		default:
			return 0, newInternal(fmt.Sprintf("unknown operator %d", int(tok.Op)))
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, newInternal(fmt.Sprintf("evaluation finished with %d values on the stack", len(stack)))
	}
	return stack[0], nil
}
