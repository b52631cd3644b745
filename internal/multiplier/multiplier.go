// Package multiplier tabulates cumulative totals of flat monthly amounts, the
// back-of-envelope companion to the full projection.
package multiplier

// Kind marks an item as money going out or coming in.
type Kind string

const (
	KindExpense Kind = "expense"
	KindRevenue Kind = "revenue"
)

const (
	monthsShown = 12
	yearsShown  = 5
)

// CheckpointMonths are the month counts shown on the comparison chart.
var CheckpointMonths = []int{1, 3, 6, 12, 24, 36, 60}

// Item is a named flat monthly amount.
type Item struct {
	Name   string
	Amount float64 // per month
	Kind   Kind
}

// Row holds an item's running totals.
type Row struct {
	Item   Item
	Months [monthsShown]float64 // after 1..12 months
	Years  [yearsShown]float64  // after 1..5 years
}

// Expand computes the running totals for one item.
func Expand(item Item) Row {
	row := Row{Item: item}
	for i := range row.Months {
		row.Months[i] = item.Amount * float64(i+1)
	}
	for i := range row.Years {
		row.Years[i] = item.Amount * 12 * float64(i+1)
	}
	return row
}

// ExpandAll expands every item, preserving order.
func ExpandAll(items []Item) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Expand(it))
	}
	return rows
}

// Net returns monthly revenue minus monthly expenses.
func Net(items []Item) float64 {
	var net float64
	for _, it := range items {
		switch it.Kind {
		case KindRevenue:
			net += it.Amount
		case KindExpense:
			net -= it.Amount
		}
	}
	return net
}

// Checkpoint is every item's total after Month months.
type Checkpoint struct {
	Month  int
	Totals map[string]float64
}

// Checkpoints returns totals at each of CheckpointMonths.
func Checkpoints(items []Item) []Checkpoint {
	out := make([]Checkpoint, 0, len(CheckpointMonths))
	for _, m := range CheckpointMonths {
		cp := Checkpoint{Month: m, Totals: make(map[string]float64, len(items))}
		for _, it := range items {
			cp.Totals[it.Name] = it.Amount * float64(m)
		}
		out = append(out, cp)
	}
	return out
}
