package dice

import "math"

// Expression is an immutable dice expression with default advantage and
// disadvantage flags. The source text is re-tokenized on every evaluation;
// separate evaluations share no mutable state beyond the randomness source
// handed to Roll.
type Expression struct {
	src    string
	adv    bool
	disadv bool
}

// New builds an expression with neither advantage nor disadvantage.
func New(src string) *Expression {
	return &Expression{src: src}
}

// NewWith builds an expression with default advantage and disadvantage
// flags applied to every Roll that does not override them.
func NewWith(src string, adv, disadv bool) *Expression {
	return &Expression{src: src, adv: adv, disadv: disadv}
}

// Source returns the expression text.
func (e *Expression) Source() string {
	return e.src
}

// Roll evaluates the expression with the stochastic handler and the
// expression's default advantage and disadvantage flags.
func (e *Expression) Roll(src Source) (float64, error) {
	return e.RollWith(src, e.adv, e.disadv)
}

// RollWith evaluates with explicit advantage and disadvantage flags,
// overriding the expression's defaults for this call only.
func (e *Expression) RollWith(src Source, adv, disadv bool) (float64, error) {
	return e.eval(RollHandler{Src: src}, adv, disadv)
}

// Mean is the expected value of the expression.
func (e *Expression) Mean() (float64, error) {
	return e.eval(MeanHandler{}, false, false)
}

// Min is the lowest value the expression can roll.
func (e *Expression) Min() (float64, error) {
	return e.eval(MinHandler{}, false, false)
}

// Max is the highest value the expression can roll.
func (e *Expression) Max() (float64, error) {
	return e.eval(MaxHandler{}, false, false)
}

// Spread is the expression evaluated with the variance contribution of
// each dice term. It is exact for sums of dice terms; other operators
// combine the contributions by their ordinary arithmetic.
func (e *Expression) Spread() (float64, error) {
	return e.eval(SpreadHandler{}, false, false)
}

// StdDev is the square root of Spread.
func (e *Expression) StdDev() (float64, error) {
	v, err := e.Spread()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

func (e *Expression) eval(h Handler, adv, disadv bool) (float64, error) {
	postfix, err := Parse(e.src)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix, h, adv, disadv)
}
