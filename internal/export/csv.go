// Package export writes projection series as CSV tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/forecast/internal/model"
)

// Header is the CSV header of a projection export.
const Header = "Year,Revenue,Expenses,Net Profit,Cash Flow,Profit Margin %,ROI %,Growth %"

// FileName is the default name of a projection export.
const FileName = "financial_projections.csv"

const (
	numFields  = 8
	colYear    = 0
	colRevenue = 1
	colExpense = 2
	colProfit  = 3
	colCash    = 4
	colMargin  = 5
	colROI     = 6
	colGrowth  = 7

	notAvailable = "N/A"
)

// WriteCSV writes one row per projected year, skipping the year-0 baseline.
func WriteCSV(w io.Writer, series []model.YearSnapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 1; i < len(series); i++ {
		if err := cw.Write(MarshalYear(series[i], series[i-1])); err != nil {
			return fmt.Errorf("writing year %d: %w", series[i].Year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalYear converts a year, and the year before it, to a CSV row.
func MarshalYear(y, prev model.YearSnapshot) []string {
	row := make([]string, numFields)
	row[colYear] = strconv.Itoa(y.Year)
	row[colRevenue] = Money(y.TotalRevenue)
	row[colExpense] = Money(y.TotalExpenses)
	row[colProfit] = Money(y.NetProfit)
	row[colCash] = Money(y.CashFlow)
	row[colMargin] = Percent(ProfitMargin(y))
	if y.ROI != 0 {
		row[colROI] = Percent(y.ROI)
	} else {
		row[colROI] = notAvailable
	}
	if g := Growth(y.NetProfit, prev.NetProfit); isFinite(g) {
		row[colGrowth] = Percent(g)
	} else {
		row[colGrowth] = notAvailable
	}
	return row
}

// ProfitMargin returns net profit as a percentage of revenue, or 0 when the
// year has no positive revenue.
func ProfitMargin(y model.YearSnapshot) float64 {
	if y.TotalRevenue > 0 {
		return y.NetProfit / y.TotalRevenue * 100
	}
	return 0
}

// Growth returns the year-over-year change in net profit as a percentage of
// the previous year's magnitude. It is not finite when prev is zero.
func Growth(cur, prev float64) float64 {
	return (cur - prev) / math.Abs(prev) * 100
}

// Money formats an amount with two decimals. Non-finite amounts print as N/A.
func Money(v float64) string {
	if !isFinite(v) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Percent formats a percentage with one decimal and a trailing %.
func Percent(v float64) string {
	if !isFinite(v) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Breakdown selects which per-year mapping WriteBreakdownCSV writes.
type Breakdown string

const (
	ExpenseByName     Breakdown = "expense-name"
	RevenueByName     Breakdown = "revenue-name"
	ExpenseByCategory Breakdown = "expense-category"
	RevenueByCategory Breakdown = "revenue-category"
)

func (b Breakdown) pick(y model.YearSnapshot) (map[string]float64, error) {
	switch b {
	case ExpenseByName:
		return y.ExpenseByName, nil
	case RevenueByName:
		return y.RevenueByName, nil
	case ExpenseByCategory:
		return y.ExpenseByCategory, nil
	case RevenueByCategory:
		return y.RevenueByCategory, nil
	}
	return nil, fmt.Errorf("unknown breakdown %q", b)
}

// WriteBreakdownCSV writes one row per year (including year 0) and one column
// per key of the chosen breakdown. Keys are sorted; a key missing from a year
// is written as 0.00.
func WriteBreakdownCSV(w io.Writer, series []model.YearSnapshot, by Breakdown) error {
	keySet := make(map[string]struct{})
	for _, y := range series {
		m, err := by.pick(y)
		if err != nil {
			return err
		}
		for k := range m {
			keySet[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(w)

	if err := cw.Write(append([]string{"Year"}, keys...)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, y := range series {
		m, _ := by.pick(y)
		row := make([]string, 0, len(keys)+1)
		row = append(row, strconv.Itoa(y.Year))
		for _, k := range keys {
			row = append(row, Money(m[k]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing year %d: %w", y.Year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
