package projection

import (
	"math"

	"github.com/cleared-dev/forecast/internal/model"
)

// Shape selects how a growth rate accumulates over elapsed years.
type Shape int

const (
	// Compound multiplies by (1+rate) once per elapsed year.
	Compound Shape = iota
	// Linear adds rate×base once per elapsed year.
	Linear
)

func (s Shape) String() string {
	if s == Linear {
		return "linear"
	}
	return "compound"
}

// ShapeFor returns the growth shape of a revenue stream. One-time revenue
// grows linearly; recurring and subscription revenue compounds.
func ShapeFor(t model.RevenueType) Shape {
	if t == model.RevenueOneTime {
		return Linear
	}
	return Compound
}

// ProjectedAmount applies growthRatePercent to an annualized base for the
// given year offset. Year 0 always returns the base. Results are not clamped:
// steep negative rates may drive the amount below zero.
func ProjectedAmount(base, growthRatePercent float64, yearOffset int, shape Shape) float64 {
	if yearOffset == 0 {
		return base
	}
	rate := growthRatePercent / 100
	if shape == Linear {
		return base * (1 + rate*float64(yearOffset))
	}
	return base * math.Pow(1+rate, float64(yearOffset))
}
