package projection

import (
	"fmt"

	"github.com/cleared-dev/forecast/internal/model"
)

// Result is the output of a full run.
type Result struct {
	Series  []model.YearSnapshot
	Metrics model.FinancialMetrics
}

// Run projects p and summarizes the series.
func Run(p model.ScenarioParameters) (Result, error) {
	series, err := Project(p)
	if err != nil {
		return Result{}, err
	}
	return Result{Series: series, Metrics: Summarize(series)}, nil
}

// Project simulates years 0..p.HorizonYears in order and threads the running
// cumulative profit and cash flow through the series. Year 0 is the baseline:
// its cash flow is the initial capital and its own net profit already counts
// toward cumulative profit.
func Project(p model.ScenarioParameters) ([]model.YearSnapshot, error) {
	if p.HorizonYears < 0 {
		return nil, fmt.Errorf("horizon must not be negative, got %d", p.HorizonYears)
	}

	series := make([]model.YearSnapshot, 0, p.HorizonYears+1)
	var cumulative, cashFlow float64
	for year := 0; year <= p.HorizonYears; year++ {
		snap, err := SimulateYear(p, year)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}

		cumulative += snap.NetProfit
		if year == 0 {
			cashFlow = p.InitialCapital
		} else {
			cashFlow += snap.NetProfit
		}
		snap.CumulativeProfit = cumulative
		snap.CashFlow = cashFlow
		if p.InitialCapital > 0 {
			snap.ROI = cumulative / p.InitialCapital * 100
		}

		series = append(series, snap)
	}
	return series, nil
}
