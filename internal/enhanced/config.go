package enhanced

import (
	"math"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/weights"
)

const (
	// MinPlayStrength and MaxPlayStrength bound the group prior whatever
	// bonus or penalty is configured.
	MinPlayStrength = 0.5
	MaxPlayStrength = 1.5
)

// settings is an EnhancedConfig with every field forced into its domain.
type settings struct {
	cap     int
	decay   float64
	sosK    float64
	sosLo   float64
	sosHi   float64
	bonus   float64
	penalty float64
	weights weights.Weights
}

func sanitize(cfg domain.EnhancedConfig) settings {
	def := domain.DefaultEnhancedConfig()
	s := settings{
		cap:     cfg.GoalDiffCap,
		decay:   cfg.Decay,
		sosK:    nonNegative(cfg.SoSK),
		bonus:   nonNegative(cfg.PlayStrengthBonus),
		penalty: nonNegative(cfg.PlayStrengthPenalty),
		weights: weights.Renormalize(weights.Weights{Off: cfg.WeightOff, Def: cfg.WeightDef, Dom: cfg.WeightDom}),
	}
	if s.cap < 0 {
		s.cap = 0
	}
	switch {
	case !finite(s.decay) || s.decay <= 0:
		s.decay = def.Decay
	case s.decay > 1:
		s.decay = 1
	}
	lo, hi := cfg.SoSClampMin, cfg.SoSClampMax
	if !finite(lo) {
		lo = def.SoSClampMin
	}
	if !finite(hi) {
		hi = def.SoSClampMax
	}
	s.sosLo, s.sosHi = math.Min(lo, hi), math.Max(lo, hi)
	return s
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegative(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}
