package normalize

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Neutral is returned for every member of a degenerate population.
const Neutral = 0.5

// Bounds is the min/max of a population of raw metric values.
type Bounds struct {
	Min float64
	Max float64
}

// Of returns the bounds of values. An empty population yields infinite
// bounds, which Scale treats as degenerate.
func Of(values []float64) Bounds {
	b := Bounds{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b
}

func (b Bounds) Degenerate() bool {
	return math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) ||
		math.IsNaN(b.Min) || math.IsNaN(b.Max) ||
		b.Min == b.Max
}

// Scale maps v into [0,1] using min-max scaling. Values outside the bounds
// are clamped.
func (b Bounds) Scale(v float64) float64 {
	if b.Degenerate() || math.IsNaN(v) {
		return Neutral
	}
	n := (v - b.Min) / (b.Max - b.Min)
	return math.Max(0, math.Min(1, n))
}

// Value scales value against population.
func Value(value float64, population []float64) float64 {
	return Of(population).Scale(value)
}

// All scales every member of population against the population itself.
func All(population []float64) []float64 {
	b := Of(population)
	out := make([]float64, len(population))
	for i, v := range population {
		out[i] = b.Scale(v)
	}
	return out
}

// Name returns a lookup key for a team name: case folded, trimmed and with
// inner whitespace collapsed.
func Name(name string) string {
	return strings.Join(strings.Fields(cases.Fold().String(name)), " ")
}
