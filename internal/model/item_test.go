package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyValid(t *testing.T) {
	for _, f := range []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually, FrequencyOneTime} {
		assert.True(t, f.Valid(), "%q should be valid", f)
	}
	assert.False(t, Frequency("weekly").Valid())
	assert.False(t, Frequency("").Valid())
}

func TestRevenueTypeScalesWithUnits(t *testing.T) {
	tests := []struct {
		typ  RevenueType
		want bool
	}{
		{RevenueOneTime, false},
		{RevenueRecurring, true},
		{RevenueSubscription, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.ScalesWithUnits(), "ScalesWithUnits(%q)", tt.typ)
		assert.True(t, tt.typ.Valid())
	}
	assert.False(t, RevenueType("lease").Valid())
}

func TestCategoryOrDefault(t *testing.T) {
	assert.Equal(t, "Other", LineItem{}.CategoryOrDefault())
	assert.Equal(t, "Rent", LineItem{Category: "Rent"}.CategoryOrDefault())
}
