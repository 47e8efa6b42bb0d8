package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	tests := []struct {
		name       string
		population []float64
		want       []float64
	}{
		{
			name:       "spread",
			population: []float64{1, 3, 2},
			want:       []float64{0, 1, 0.5},
		},
		{
			name:       "negative values",
			population: []float64{-2, 0, 2},
			want:       []float64{0, 0.5, 1},
		},
		{
			name:       "single team",
			population: []float64{4.2},
			want:       []float64{0.5},
		},
		{
			name:       "all equal",
			population: []float64{1.5, 1.5, 1.5},
			want:       []float64{0.5, 0.5, 0.5},
		},
		{
			name:       "empty",
			population: nil,
			want:       []float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := All(tt.population)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestValue_InRange(t *testing.T) {
	population := []float64{0.3, -1.7, 8, 2.25, 0, 5.5}
	for _, v := range population {
		got := Value(v, population)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
	assert.Equal(t, 0.0, Value(-1.7, population))
	assert.Equal(t, 1.0, Value(8, population))
}

func TestBounds_Scale(t *testing.T) {
	b := Bounds{Min: 1, Max: 3}
	assert.Equal(t, 0.0, b.Scale(0))
	assert.Equal(t, 1.0, b.Scale(10))
	assert.Equal(t, 0.25, b.Scale(1.5))
	assert.Equal(t, Neutral, b.Scale(math.NaN()))

	assert.Equal(t, Neutral, Bounds{Min: math.Inf(-1), Max: 2}.Scale(1))
	assert.Equal(t, Neutral, Bounds{Min: math.NaN(), Max: 2}.Scale(1))
	assert.Equal(t, Neutral, Of(nil).Scale(1))
}

func TestName(t *testing.T) {
	assert.Equal(t, "tsv wolfsanger ii", Name("  TSV   Wolfsanger II "))
	assert.Equal(t, Name("KSV Baunatal"), Name("ksv baunatal"))
}
