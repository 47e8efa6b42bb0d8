package weights

import (
	"fmt"
	"math"
)

type Key string

const (
	Offense   Key = "off"
	Defense   Key = "def"
	Dominance Key = "dom"
)

func ParseKey(s string) (Key, error) {
	switch Key(s) {
	case Offense, Defense, Dominance:
		return Key(s), nil
	}
	return "", fmt.Errorf("unknown weight key %q", s)
}

type Weights struct {
	Off float64 `json:"wOff"`
	Def float64 `json:"wDef"`
	Dom float64 `json:"wDom"`
}

// Default is the enhanced score fallback used when a weight set cannot be
// renormalized.
var Default = Weights{Off: 0.35, Def: 0.25, Dom: 0.40}

func (w Weights) Sum() float64 {
	return w.Off + w.Def + w.Dom
}

// Combine returns the weighted sum of the three components.
func (w Weights) Combine(off, def, dom float64) float64 {
	return w.Off*off + w.Def*def + w.Dom*dom
}

// Renormalize scales w to sum to one. A set with a non-finite sum falls
// back to Default, negative components count as zero and a set with
// nothing left falls back to Default too.
func Renormalize(w Weights) Weights {
	if sum := w.Sum(); math.IsInf(sum, 0) || math.IsNaN(sum) {
		return Default
	}
	w = Weights{Off: nonNegative(w.Off), Def: nonNegative(w.Def), Dom: nonNegative(w.Dom)}
	sum := w.Sum()
	if sum <= 0 {
		return Default
	}
	return Weights{Off: w.Off / sum, Def: w.Def / sum, Dom: w.Dom / sum}
}

// Rebalance sets the weight named by key to value (clamped to [0,1]) and
// scales the other two so that the set sums to one. When the other two
// were both zero the remainder is split evenly between them.
func Rebalance(key Key, value float64, current Weights) Weights {
	next := clamp01(value)
	remaining := 1 - next

	current = Weights{Off: nonNegative(current.Off), Def: nonNegative(current.Def), Dom: nonNegative(current.Dom)}
	a, b := current.others(key)
	otherSum := a + b
	if otherSum <= 0 || math.IsInf(otherSum, 0) {
		a, b = remaining/2, remaining/2
	} else {
		scale := remaining / otherSum
		a, b = a*scale, b*scale
	}
	return Renormalize(assemble(key, next, a, b))
}

func (w Weights) others(key Key) (float64, float64) {
	switch key {
	case Offense:
		return w.Def, w.Dom
	case Defense:
		return w.Off, w.Dom
	default:
		return w.Off, w.Def
	}
}

func assemble(key Key, value, a, b float64) Weights {
	switch key {
	case Offense:
		return Weights{Off: value, Def: a, Dom: b}
	case Defense:
		return Weights{Off: a, Def: value, Dom: b}
	default:
		return Weights{Off: a, Def: b, Dom: value}
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
