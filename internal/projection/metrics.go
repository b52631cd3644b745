package projection

import (
	"math"

	"github.com/cleared-dev/forecast/internal/model"
)

// Summarize derives summary metrics from a series produced by Project.
//
// Year 0 is excluded from every average: it is the unescalated baseline.
// Degenerate ratios (zero baselines, a one-year horizon) report 0 so callers
// always have a renderable number. A series shorter than two years yields the
// zero metrics.
func Summarize(series []model.YearSnapshot) model.FinancialMetrics {
	if len(series) < 2 {
		return model.FinancialMetrics{}
	}

	initialCapital := series[0].CashFlow
	first := series[1]
	last := series[len(series)-1]
	horizon := len(series) - 1

	m := model.FinancialMetrics{
		FinalCashFlow: last.CashFlow,
		TotalProfit:   last.CumulativeProfit,
	}

	// A one-year horizon has no span to compound over.
	if horizon > 1 && first.TotalRevenue > 0 {
		ratio := last.TotalRevenue / first.TotalRevenue
		m.CAGR = finiteOrZero((math.Pow(ratio, 1/float64(horizon-1)) - 1) * 100)
	}

	for i := 1; i < len(series); i++ {
		if series[i].CumulativeProfit > 0 {
			year := i
			m.BreakEvenYear = &year
			break
		}
	}

	if initialCapital > 0 {
		m.ROI = finiteOrZero(last.CumulativeProfit / initialCapital * 100)
	}

	var marginSum, ratioSum float64
	var marginYears, ratioYears int
	for _, y := range series[1:] {
		if y.TotalRevenue > 0 {
			marginSum += y.NetProfit / y.TotalRevenue * 100
			marginYears++
		}
		if y.TotalExpenses > 0 {
			ratioSum += y.EmployeeCost / y.TotalExpenses * 100
			ratioYears++
		}
	}
	if marginYears > 0 {
		m.ProfitMarginPercent = finiteOrZero(marginSum / float64(marginYears))
	}
	if ratioYears > 0 {
		m.EmployeeCostRatioPercent = finiteOrZero(ratioSum / float64(ratioYears))
	}

	if monthlyBurn := first.TotalExpenses / 12; monthlyBurn > 0 {
		m.RunwayMonths = finiteOrZero(initialCapital / monthlyBurn)
	}

	return m
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
