package model

// Frequency is how often a line item's amount is billed.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
	FrequencyOneTime   Frequency = "one-time"
)

// Valid reports whether f is one of the enumerated frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually, FrequencyOneTime:
		return true
	}
	return false
}

// RevenueType classifies a revenue stream.
//
// The type selects both the growth shape and whether EstimatedUnits applies:
// recurring and subscription streams scale with a unit count and compound,
// one-time streams do neither.
type RevenueType string

const (
	RevenueOneTime      RevenueType = "one-time"
	RevenueRecurring    RevenueType = "recurring"
	RevenueSubscription RevenueType = "subscription"
)

// Valid reports whether t is one of the enumerated revenue types.
func (t RevenueType) Valid() bool {
	switch t {
	case RevenueOneTime, RevenueRecurring, RevenueSubscription:
		return true
	}
	return false
}

// ScalesWithUnits reports whether the annualized base is multiplied by
// EstimatedUnits.
func (t RevenueType) ScalesWithUnits() bool {
	return t == RevenueRecurring || t == RevenueSubscription
}

// DefaultCategory is used for items saved without a category.
const DefaultCategory = "Other"

// EmployeeCostsKey is the synthetic expense name and category carrying
// personnel cost in every year's breakdowns.
const EmployeeCostsKey = "Employee Costs"

// LineItem is the shape shared by expense and revenue entries.
type LineItem struct {
	ID                int       `json:"id" yaml:"id"`
	Name              string    `json:"name" yaml:"name"`
	Amount            float64   `json:"amount" yaml:"amount"`
	Frequency         Frequency `json:"frequency" yaml:"frequency"`
	GrowthRatePercent float64   `json:"growth" yaml:"growth"`
	Category          string    `json:"category" yaml:"category"`
}

// CategoryOrDefault returns the item's category, or DefaultCategory if empty.
func (li LineItem) CategoryOrDefault() string {
	if li.Category == "" {
		return DefaultCategory
	}
	return li.Category
}

// ExpenseItem is a recurring or one-time cost.
type ExpenseItem struct {
	LineItem `yaml:",inline"`
}

// RevenueItem is a revenue stream.
type RevenueItem struct {
	LineItem       `yaml:",inline"`
	RevenueType    RevenueType `json:"revenueType" yaml:"revenueType"`
	EstimatedUnits float64     `json:"clients" yaml:"clients"` // clients or subscribers
}
