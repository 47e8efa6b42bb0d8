package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/weights"
)

var validate = validator.New()

// enhancedQuery carries the dashboard URL parameters. Keys missing from the
// query keep the server defaults.
type enhancedQuery struct {
	GD       int     `query:"gd"`
	Decay    float64 `query:"decay"`
	SoS      float64 `query:"sos"`
	PSStrong float64 `query:"psStrong"`
	PSWeak   float64 `query:"psWeak"`
	WOff     float64 `query:"wOff"`
	WDef     float64 `query:"wDef"`
	WDom     float64 `query:"wDom"`
	SoSMin   float64 `query:"sosMin"`
	SoSMax   float64 `query:"sosMax"`
}

func newEnhancedQuery(cfg domain.EnhancedConfig) enhancedQuery {
	return enhancedQuery{
		GD:       cfg.GoalDiffCap,
		Decay:    cfg.Decay,
		SoS:      cfg.SoSK,
		PSStrong: cfg.PlayStrengthBonus,
		PSWeak:   cfg.PlayStrengthPenalty,
		WOff:     cfg.WeightOff,
		WDef:     cfg.WeightDef,
		WDom:     cfg.WeightDom,
		SoSMin:   cfg.SoSClampMin,
		SoSMax:   cfg.SoSClampMax,
	}
}

func (q enhancedQuery) config() (domain.EnhancedConfig, error) {
	cfg := domain.EnhancedConfig{
		GoalDiffCap:         q.GD,
		Decay:               q.Decay,
		SoSK:                q.SoS,
		SoSClampMin:         q.SoSMin,
		SoSClampMax:         q.SoSMax,
		PlayStrengthBonus:   q.PSStrong,
		PlayStrengthPenalty: q.PSWeak,
		WeightOff:           q.WOff,
		WeightDef:           q.WDef,
		WeightDom:           q.WDom,
	}
	if err := validateStruct(cfg); err != nil {
		return domain.EnhancedConfig{}, err
	}
	return cfg, nil
}

type rebalanceRequest struct {
	Key     string           `json:"key" validate:"oneof=off def dom"`
	Value   float64          `json:"value"`
	Weights *weights.Weights `json:"weights"`
}

type rebalanceResponse struct {
	Weights weights.Weights `json:"weights"`
	Sum     float64         `json:"sum"`
}

// validateStruct joins one error per failed field.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	var errs []error
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return errors.Join(errs...)
}
