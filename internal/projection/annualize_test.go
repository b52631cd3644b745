package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/forecast/internal/model"
)

func TestAnnualize(t *testing.T) {
	tests := []struct {
		freq model.Frequency
		want float64
	}{
		{model.FrequencyMonthly, 1200},
		{model.FrequencyQuarterly, 400},
		{model.FrequencyAnnually, 100},
		{model.FrequencyOneTime, 100},
	}
	for _, tt := range tests {
		got, err := Annualize(100, tt.freq)
		require.NoError(t, err, "Annualize(100, %q)", tt.freq)
		assert.Equal(t, tt.want, got, "Annualize(100, %q)", tt.freq)
	}
}

func TestAnnualize_InvalidFrequency(t *testing.T) {
	_, err := Annualize(100, model.Frequency("weekly"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
	assert.Contains(t, err.Error(), "weekly")
}

func TestProjectedAmount(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		rate  float64
		year  int
		shape Shape
		want  float64
	}{
		{"year zero compound", 500, 25, 0, Compound, 500},
		{"year zero linear", 500, 25, 0, Linear, 500},
		{"compound", 100, 50, 2, Compound, 225},
		{"linear", 100, 50, 2, Linear, 200},
		{"full decay compound", 100, -100, 3, Compound, 0},
		{"linear goes negative", 100, -60, 3, Linear, -80},
		{"negative compound", 100, -50, 1, Compound, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProjectedAmount(tt.base, tt.rate, tt.year, tt.shape), 1e-9)
		})
	}
}

func TestShapeFor(t *testing.T) {
	assert.Equal(t, Linear, ShapeFor(model.RevenueOneTime))
	assert.Equal(t, Compound, ShapeFor(model.RevenueRecurring))
	assert.Equal(t, Compound, ShapeFor(model.RevenueSubscription))
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "compound", Compound.String())
}
