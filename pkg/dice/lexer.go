package dice

// diceSeparator splits the count from the sides in a dice term. Matched
// case-insensitively.
const diceSeparator = 'd'

// lexer consumes operand tokens from an expression string.
type lexer struct {
	input string
	pos   int
}

// readOperand consumes the maximal operand starting at the current
// position, which must point at a digit or a minus sign: a run of minus
// signs collapsed into a single sign bit (odd count means negative), a
// digit run for the count, and optionally the dice separator followed by a
// digit run for the sides.
func (l *lexer) readOperand() (Token, error) {
	sign := 1
	for l.pos < len(l.input) && l.input[l.pos] == '-' {
		sign = -sign
		l.pos++
	}

	count, hasCount := l.readDigits()
	if !hasCount {
		return Token{}, newEmptyOperand(l.pos)
	}

	if l.pos < len(l.input) && lower(l.input[l.pos]) == diceSeparator {
		l.pos++
		sides, ok := l.readDigits()
		if !ok {
			return Token{}, newDanglingDiceSeparator(l.pos)
		}
		return Dice(sign, count, sides), nil
	}

	return Integer(sign, count), nil
}

// readDigits consumes a digit run and reports whether any digits were
// present.
func (l *lexer) readDigits() (int, bool) {
	start := l.pos
	n := 0
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		n = n*10 + int(l.input[l.pos]-'0')
		l.pos++
	}
	return n, l.pos > start
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
