package model

// YearSnapshot is one simulated year.
type YearSnapshot struct {
	Year                    int
	TotalRevenue            float64
	TotalExpenses           float64
	EmployeeCost            float64
	ProfitBeforeTax         float64
	TaxAmount               float64
	NetProfit               float64
	InflationAdjustedProfit float64
	CumulativeProfit        float64 // net profit summed over years 0..Year
	CashFlow                float64
	ROI                     float64

	ExpenseByName     map[string]float64
	RevenueByName     map[string]float64
	ExpenseByCategory map[string]float64
	RevenueByCategory map[string]float64
}

// FinancialMetrics summarizes a completed projection series.
type FinancialMetrics struct {
	CAGR                     float64
	BreakEvenYear            *int // nil when not reached within the horizon
	ROI                      float64
	FinalCashFlow            float64
	TotalProfit              float64
	ProfitMarginPercent      float64
	EmployeeCostRatioPercent float64
	RunwayMonths             float64
}

// BreakEvenReached reports whether the series broke even within its horizon.
func (m FinancialMetrics) BreakEvenReached() bool {
	return m.BreakEvenYear != nil
}
