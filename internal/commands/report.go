package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cleared-dev/forecast/internal/export"
	"github.com/cleared-dev/forecast/internal/model"
)

// printSeries writes the year table, baseline year included.
func printSeries(w io.Writer, series []model.YearSnapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tRevenue\tExpenses\tEmployees\tNet Profit\tReal Profit\tCash Flow\tROI %\t")
	for _, y := range series {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			y.Year,
			export.Money(y.TotalRevenue),
			export.Money(y.TotalExpenses),
			export.Money(y.EmployeeCost),
			export.Money(y.NetProfit),
			export.Money(y.InflationAdjustedProfit),
			export.Money(y.CashFlow),
			export.Percent(y.ROI),
		)
	}
	return tw.Flush()
}

func breakEvenLabel(m model.FinancialMetrics) string {
	if !m.BreakEvenReached() {
		return "not reached"
	}
	return "year " + strconv.Itoa(*m.BreakEvenYear)
}

// metricRows pairs each summary metric with its formatted value.
func metricRows(m model.FinancialMetrics) [][2]string {
	return [][2]string{
		{"CAGR", export.Percent(m.CAGR)},
		{"Break-even", breakEvenLabel(m)},
		{"ROI", export.Percent(m.ROI)},
		{"Final cash flow", export.Money(m.FinalCashFlow)},
		{"Total profit", export.Money(m.TotalProfit)},
		{"Profit margin", export.Percent(m.ProfitMarginPercent)},
		{"Employee cost ratio", export.Percent(m.EmployeeCostRatioPercent)},
		{"Runway (months)", strconv.FormatFloat(m.RunwayMonths, 'f', 1, 64)},
	}
}

func printMetrics(w io.Writer, m model.FinancialMetrics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range metricRows(m) {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}
