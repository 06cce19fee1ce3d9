package dice

import (
	"fmt"
	"strings"
)

// Error tag constants classifying dice expression failures.
const (
	TagEmptyOperand          = "EmptyOperand"
	TagDanglingDiceSeparator = "DanglingDiceSeparator"
	TagUnexpectedWhitespace  = "UnexpectedWhitespace"
	TagUnexpectedCharacter   = "UnexpectedCharacter"
	TagUnmatchedCloser       = "UnmatchedCloser"
	TagUnbalancedBrackets    = "UnbalancedBrackets"
	TagHangingOperator       = "HangingOperator"
	TagDivisionByZero        = "DivisionByZero"
	TagInternal              = "Internal"
)

// Error is a dice expression failure with a message and classification
// tags. Parse-time tags identify malformed input rejected before any
// randomness is consumed. The Internal tag marks an evaluator invariant
// violation that no input accepted by Parse should be able to trigger.
type Error struct {
	Message string
	Tags    []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]", e.Message, strings.Join(e.Tags, ", "))
}

// HasTag reports whether the error carries the given tag.
func (e *Error) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func newEmptyOperand(pos int) *Error {
	return &Error{
		Message: fmt.Sprintf("expected digits at position %d", pos),
		Tags:    []string{TagEmptyOperand},
	}
}

func newDanglingDiceSeparator(pos int) *Error {
	return &Error{
		Message: fmt.Sprintf("dice separator at position %d has no sides (format: 'XdY')", pos),
		Tags:    []string{TagDanglingDiceSeparator},
	}
}

func newUnexpectedWhitespace(pos int) *Error {
	return &Error{
		Message: fmt.Sprintf("unexpected whitespace between digits at position %d", pos),
		Tags:    []string{TagUnexpectedWhitespace},
	}
}

func newUnexpectedCharacter(ch byte, pos int) *Error {
	return &Error{
		Message: fmt.Sprintf("unexpected character %q at position %d", string(ch), pos),
		Tags:    []string{TagUnexpectedCharacter},
	}
}

func newUnmatchedCloser(ch byte, pos int) *Error {
	return &Error{
		Message: fmt.Sprintf("unexpected %q at position %d: no matching opener", string(ch), pos),
		Tags:    []string{TagUnmatchedCloser},
	}
}

func newUnbalancedBrackets(opener byte) *Error {
	return &Error{
		Message: fmt.Sprintf("unbalanced brackets: %q was never closed", string(opener)),
		Tags:    []string{TagUnbalancedBrackets},
	}
}

func newHangingOperator() *Error {
	return &Error{
		Message: "unexpected end of expression after operator",
		Tags:    []string{TagHangingOperator},
	}
}

func newDivisionByZero() *Error {
	return &Error{
		Message: "division by zero",
		Tags:    []string{TagDivisionByZero},
	}
}

func newInternal(msg string) *Error {
	return &Error{Message: msg, Tags: []string{TagInternal}}
}
