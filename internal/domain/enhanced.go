package domain

type EnhancedConfig struct {
	GoalDiffCap         int     `json:"gd" toml:"goal_diff_cap" validate:"gte=0,lte=10"`
	Decay               float64 `json:"decay" toml:"decay" validate:"gt=0.5,lte=1"`
	SoSK                float64 `json:"sos" toml:"sos_k" validate:"gte=0,lte=0.5"`
	SoSClampMin         float64 `json:"sosMin" toml:"sos_clamp_min" validate:"gte=0.25,lte=1.5"`
	SoSClampMax         float64 `json:"sosMax" toml:"sos_clamp_max" validate:"gte=0.5,lte=2"`
	PlayStrengthBonus   float64 `json:"psStrong" toml:"play_strength_bonus" validate:"gte=0,lte=0.3"`
	PlayStrengthPenalty float64 `json:"psWeak" toml:"play_strength_penalty" validate:"gte=0,lte=0.3"`
	WeightOff           float64 `json:"wOff" toml:"weight_off" validate:"gte=0,lte=1"`
	WeightDef           float64 `json:"wDef" toml:"weight_def" validate:"gte=0,lte=1"`
	WeightDom           float64 `json:"wDom" toml:"weight_dom" validate:"gte=0,lte=1"`
}

// DefaultEnhancedConfig is the configuration the dashboard starts with.
func DefaultEnhancedConfig() EnhancedConfig {
	return EnhancedConfig{
		GoalDiffCap:         3,
		Decay:               0.93,
		SoSK:                0.25,
		SoSClampMin:         0.75,
		SoSClampMax:         1.25,
		PlayStrengthBonus:   0.05,
		PlayStrengthPenalty: 0.05,
		WeightOff:           0.35,
		WeightDef:           0.25,
		WeightDom:           0.40,
	}
}

type EnhancedResult struct {
	TeamID                 string  `json:"teamId"`
	TeamName               string  `json:"teamName"`
	GroupID                string  `json:"groupId"`
	GroupName              string  `json:"groupName"`
	Games                  int     `json:"games"`
	HasGames               bool    `json:"hasGames"`
	Raw                    Metrics `json:"raw"`
	Normalized             Metrics `json:"normalized"`
	SoSAverage             float64 `json:"sosAvg"`
	SoSMultiplier          float64 `json:"sosMultiplier"`
	PlayStrengthMultiplier float64 `json:"playStrengthMultiplier"`
	BasePower              float64 `json:"basePower"`
	EnhancedPower          float64 `json:"powerEnhanced"`
}
