// Package check builds d20 ability checks and character generation on top
// of the dice expression core.
package check

import (
	"fmt"
	"math"
	"sort"

	"github.com/rollcraft/rollcraft/pkg/dice"
)

// D20 rolls 1d20 plus the given modifier. The modifier may be negative.
func D20(src dice.Source, modifier int, adv, disadv bool) (int, error) {
	expr := dice.New(fmt.Sprintf("1d20+%d", modifier))
	v, err := expr.RollWith(src, adv, disadv)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// SuccessChance returns the probability that a d20 roll plus modifier meets
// or beats the difficulty class. When both flags are set, advantage wins.
//
// The result is deliberately not clamped to [0, 1]: out-of-range difficulty
// and modifier combinations yield out-of-range values and it is the
// caller's call how to interpret them.
func SuccessChance(dc, modifier int, adv, disadv bool) float64 {
	fail := float64(dc-modifier-1) / 20
	switch {
	case adv:
		return 1 - fail*fail
	case disadv:
		return (1 - fail) * (1 - fail)
	default:
		return 1 - fail
	}
}

// Modifier converts an ability score to its modifier, flooring the halved
// offset so odd scores below 10 round down.
func Modifier(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}

// ScoreOptions bound the rejection sampling performed by AbilityScores.
type ScoreOptions struct {
	MinScore         int // lowest acceptable single score
	MaxScore         int // highest acceptable single score
	MinModifierTotal int // lowest acceptable sum of modifiers
	MaxModifierTotal int // highest acceptable sum of modifiers
}

// DefaultScoreOptions are the bounds used when AbilityScores is given nil
// options: scores in [1, 20] with a modifier total in [-10, 10].
func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{
		MinScore:         1,
		MaxScore:         20,
		MinModifierTotal: -10,
		MaxModifierTotal: 10,
	}
}

// maxScoreAttempts caps the rejection sampling so unsatisfiable bounds fail
// instead of spinning forever.
const maxScoreAttempts = 10000

// AbilityScores generates six ability scores, each the sum of the best
// three of four 1d6 rolls, resampling the whole set until every score and
// the modifier total fall within the bounds.
func AbilityScores(src dice.Source, opts *ScoreOptions) ([]int, error) {
	bounds := DefaultScoreOptions()
	if opts != nil {
		bounds = *opts
	}

	d6 := dice.New("1d6")
	for attempt := 0; attempt < maxScoreAttempts; attempt++ {
		scores := make([]int, 6)
		for i := range scores {
			rolls := make([]int, 4)
			for j := range rolls {
				v, err := d6.Roll(src)
				if err != nil {
					return nil, err
				}
				rolls[j] = int(v)
			}
			sort.Ints(rolls)
			scores[i] = rolls[1] + rolls[2] + rolls[3]
		}
		if scoresAcceptable(scores, bounds) {
			return scores, nil
		}
	}
	return nil, fmt.Errorf("no acceptable ability scores after %d attempts", maxScoreAttempts)
}

func scoresAcceptable(scores []int, bounds ScoreOptions) bool {
	modifierTotal := 0
	for _, s := range scores {
		if s < bounds.MinScore || s > bounds.MaxScore {
			return false
		}
		modifierTotal += Modifier(s)
	}
	return modifierTotal >= bounds.MinModifierTotal && modifierTotal <= bounds.MaxModifierTotal
}
