package projection

import (
	"fmt"
	"math"

	"github.com/cleared-dev/forecast/internal/model"
)

// SimulateYear computes one year of the projection. The running fields
// CumulativeProfit, CashFlow and ROI are left zero; Project fills them in.
func SimulateYear(p model.ScenarioParameters, yearOffset int) (model.YearSnapshot, error) {
	n := float64(yearOffset)
	employeeCost := p.AvgSalary * p.EmployeeCount * math.Pow(1+p.SalaryGrowthPercent/100, n)

	snap := model.YearSnapshot{
		Year:              yearOffset,
		EmployeeCost:      employeeCost,
		ExpenseByName:     make(map[string]float64, len(p.Expenses)+1),
		RevenueByName:     make(map[string]float64, len(p.Revenues)),
		ExpenseByCategory: make(map[string]float64),
		RevenueByCategory: make(map[string]float64),
	}

	var expenses float64
	for _, e := range p.Expenses {
		base, err := Annualize(e.Amount, e.Frequency)
		if err != nil {
			return model.YearSnapshot{}, fmt.Errorf("expense %q: %w", e.Name, err)
		}
		yearly := ProjectedAmount(base, e.GrowthRatePercent, yearOffset, Compound)
		expenses += yearly
		snap.ExpenseByName[e.Name] = yearly
		snap.ExpenseByCategory[e.CategoryOrDefault()] += yearly
	}

	var revenue float64
	for _, r := range p.Revenues {
		base, err := Annualize(r.Amount, r.Frequency)
		if err != nil {
			return model.YearSnapshot{}, fmt.Errorf("revenue %q: %w", r.Name, err)
		}
		if r.RevenueType.ScalesWithUnits() {
			base *= r.EstimatedUnits
		}
		yearly := ProjectedAmount(base, r.GrowthRatePercent, yearOffset, ShapeFor(r.RevenueType))
		revenue += yearly
		snap.RevenueByName[r.Name] = yearly
		snap.RevenueByCategory[r.CategoryOrDefault()] += yearly
	}

	// Personnel cost is an expense line and category of its own.
	snap.ExpenseByName[model.EmployeeCostsKey] = employeeCost
	snap.ExpenseByCategory[model.EmployeeCostsKey] = employeeCost

	snap.TotalExpenses = expenses + employeeCost
	snap.TotalRevenue = revenue
	snap.ProfitBeforeTax = snap.TotalRevenue - snap.TotalExpenses

	// Losses are neither taxed nor refunded.
	if snap.ProfitBeforeTax > 0 {
		snap.TaxAmount = snap.ProfitBeforeTax * p.TaxRatePercent / 100
	}
	snap.NetProfit = snap.ProfitBeforeTax - snap.TaxAmount
	snap.InflationAdjustedProfit = snap.NetProfit / math.Pow(1+p.InflationRatePercent/100, n)

	return snap, nil
}
