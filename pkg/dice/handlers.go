package dice

// RollHandler samples dice terms from a randomness source. Each die is one
// uniform draw in [1, sides]; advantage draws twice and keeps the higher,
// disadvantage draws twice and keeps the lower. Setting both flags cancels
// them out.
type RollHandler struct {
	Src Source
}

func (h RollHandler) Operand(sign, count, sides int, adv, disadv bool) float64 {
	// The sign is normalized to +/-1; the magnitude of count still applies.
	if sign >= 0 {
		sign = 1
	} else {
		sign = -1
	}
	if sides == 0 {
		return float64(sign * count)
	}
	total := 0
	for i := 0; i < count; i++ {
		total += h.draw(sides, adv, disadv)
	}
	return float64(sign * total)
}

func (h RollHandler) draw(sides int, adv, disadv bool) int {
	v := h.Src.Intn(sides) + 1
	switch {
	case adv && !disadv:
		if w := h.Src.Intn(sides) + 1; w > v {
			v = w
		}
	case disadv && !adv:
		if w := h.Src.Intn(sides) + 1; w < v {
			v = w
		}
	}
	return v
}

// MeanHandler replaces each dice term with its expected value
// count*(sides+1)/2.
type MeanHandler struct{}

func (MeanHandler) Operand(sign, count, sides int, _, _ bool) float64 {
	if sides == 0 {
		return float64(sign * count)
	}
	return float64(sign*count) * (float64(sides) + 1) / 2
}

// MinHandler replaces each operand with its lowest possible contribution to
// the expression. A negative dice term contributes least when the dice roll
// their highest values, so the bound flips with the sign.
type MinHandler struct{}

func (MinHandler) Operand(sign, count, sides int, _, _ bool) float64 {
	if sign < 0 {
		if sides == 0 {
			return float64(sign * count)
		}
		return float64(sign * count * sides)
	}
	return float64(sign * count)
}

// MaxHandler mirrors MinHandler: each operand contributes its highest
// possible value, with the same sign-aware bound flip.
type MaxHandler struct{}

func (MaxHandler) Operand(sign, count, sides int, _, _ bool) float64 {
	if sign < 0 {
		return float64(sign * count)
	}
	if sides == 0 {
		return float64(sign * count)
	}
	return float64(sign * count * sides)
}

// SpreadHandler replaces each dice term with the variance of a sum of count
// uniform draws on [1, sides], (count/12)*(sides^2-1). Plain integers have
// no spread.
type SpreadHandler struct{}

func (SpreadHandler) Operand(_, count, sides int, _, _ bool) float64 {
	if sides == 0 {
		return 0
	}
	return float64(count) / 12 * (float64(sides)*float64(sides) - 1)
}
