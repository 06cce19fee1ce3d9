package dice

// stackEntry is one slot of the shunting-yard operator stack: either a
// pending operator or an opener bracket awaiting its closer.
type stackEntry struct {
	bracket bool
	opener  byte
	op      Op
}

// Parse converts an infix dice expression into a postfix (Reverse Polish)
// token sequence using the shunting-yard algorithm. Operands never enter
// the operator stack; brackets are resolved and discarded, so the returned
// sequence contains only operand and operator tokens.
//
// A minus sign at the start of the input, after an opener bracket, or after
// a binary operator begins an operand, which lets expressions like "3 - -2"
// and "-2d6" parse without a unary operator token type.
func Parse(input string) ([]Token, error) {
	var output []Token
	var stack []stackEntry
	l := &lexer{input: input}

	// expectOperand is true wherever a value must come next; it decides
	// whether a minus sign is a binary operator or an operand sign.
	expectOperand := true

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isSpace(ch):
			start := l.pos
			for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
				l.pos++
			}
			// Whitespace may surround operators and brackets but never
			// split two digit runs.
			if start > 0 && isDigit(l.input[start-1]) &&
				l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				return nil, newUnexpectedWhitespace(start)
			}

		case isDigit(ch) || (ch == '-' && expectOperand):
			tok, err := l.readOperand()
			if err != nil {
				return nil, err
			}
			output = append(output, tok)
			expectOperand = false

		case brackets[ch] != 0:
			stack = append(stack, stackEntry{bracket: true, opener: ch})
			l.pos++
			expectOperand = true

		case isCloser(ch):
			opener, _ := openerFor(ch)
			for len(stack) > 0 && !stack[len(stack)-1].bracket {
				output = append(output, Operator(stack[len(stack)-1].op))
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 || stack[len(stack)-1].opener != opener {
				return nil, newUnmatchedCloser(ch, l.pos)
			}
			stack = stack[:len(stack)-1]
			l.pos++
			expectOperand = false

		default:
			op, ok := operators[ch]
			if !ok {
				return nil, newUnexpectedCharacter(ch, l.pos)
			}
			l.pos++
			if l.remainingIsBlank() {
				return nil, newHangingOperator()
			}
			// Left-associativity: equal precedence pops too.
			for len(stack) > 0 && !stack[len(stack)-1].bracket &&
				stack[len(stack)-1].op.Precedence() >= op.Precedence() {
				output = append(output, Operator(stack[len(stack)-1].op))
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, stackEntry{op: op})
			expectOperand = true
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].bracket {
			return nil, newUnbalancedBrackets(stack[i].opener)
		}
		output = append(output, Operator(stack[i].op))
	}

	if len(output) == 0 {
		return nil, newEmptyOperand(l.pos)
	}
	return output, nil
}

// remainingIsBlank reports whether only whitespace is left in the input.
func (l *lexer) remainingIsBlank() bool {
	for i := l.pos; i < len(l.input); i++ {
		if !isSpace(l.input[i]) {
			return false
		}
	}
	return true
}
