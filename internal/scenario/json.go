package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cleared-dev/forecast/internal/model"
)

// ExportFileName is the default name of a scenario export.
const ExportFileName = "finance_scenarios.json"

var (
	requiredScenarioKeys = []string{
		"id", "name", "date",
		"initialCapital", "taxRate", "inflationRate", "years",
		"avgSalary", "employeeCount", "salaryGrowth",
		"expenses", "revenues",
	}
	requiredItemKeys    = []string{"id", "name", "amount", "frequency", "growth"}
	requiredRevenueKeys = []string{"revenueType", "clients"}
)

// Export writes scenarios as an indented JSON array. Empty item lists are
// written as [] so the output always passes Import.
func Export(w io.Writer, scenarios []Scenario) error {
	out := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		s.ScenarioParameters = s.Params()
		out = append(out, s)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding scenarios: %w", err)
	}
	return nil
}

// RecordError explains why one record of an import was rejected.
type RecordError struct {
	Index    int // position in the imported array
	ID       string
	Problems []string
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d [%s]: %s", e.Index, e.ID, strings.Join(e.Problems, "; "))
}

// ImportResult is the outcome of Import.
type ImportResult struct {
	Scenarios []Scenario
	Rejected  []RecordError
}

// Import reads a JSON array of scenarios. Unknown fields are ignored. A record
// missing any required field, or carrying an unknown frequency or revenue
// type, is rejected on its own; the remaining records still import. Input
// that is not a JSON array fails as a whole.
func Import(r io.Reader) (ImportResult, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return ImportResult{}, fmt.Errorf("decoding scenario import: %w", err)
	}

	var res ImportResult
	for i, rec := range raw {
		s, problems := decodeRecord(rec)
		if len(problems) > 0 {
			res.Rejected = append(res.Rejected, RecordError{Index: i, ID: s.ID, Problems: problems})
			continue
		}
		res.Scenarios = append(res.Scenarios, s)
	}
	return res, nil
}

func decodeRecord(rec json.RawMessage) (Scenario, []string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rec, &fields); err != nil {
		return Scenario{}, []string{fmt.Sprintf("not an object: %v", err)}
	}

	var problems []string
	problems = append(problems, missing(fields, "", requiredScenarioKeys)...)
	problems = append(problems, checkItems(fields["expenses"], "expenses", false)...)
	problems = append(problems, checkItems(fields["revenues"], "revenues", true)...)

	var s Scenario
	if err := json.Unmarshal(rec, &s); err != nil {
		problems = append(problems, err.Error())
		return s, problems
	}
	if len(problems) > 0 {
		return s, problems
	}
	return s, Validate(s)
}

func checkItems(raw json.RawMessage, field string, revenue bool) []string {
	if len(raw) == 0 || isNull(raw) {
		return nil // reported by the scenario-level check
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{fmt.Sprintf("%s: %v", field, err)}
	}
	var problems []string
	for i, item := range items {
		prefix := fmt.Sprintf("%s[%d].", field, i)
		problems = append(problems, missing(item, prefix, requiredItemKeys)...)
		if revenue {
			problems = append(problems, missing(item, prefix, requiredRevenueKeys)...)
		}
	}
	return problems
}

func missing(fields map[string]json.RawMessage, prefix string, keys []string) []string {
	var out []string
	for _, k := range keys {
		v, ok := fields[k]
		if !ok || isNull(v) {
			out = append(out, "missing "+prefix+k)
		}
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// Validate checks the enumerated fields, the horizon and that every number is
// finite.
func Validate(s Scenario) []string {
	var problems []string
	if strings.TrimSpace(s.Name) == "" {
		problems = append(problems, "name is empty")
	}
	if s.HorizonYears < 1 {
		problems = append(problems, fmt.Sprintf("years must be at least 1, got %d", s.HorizonYears))
	}
	scalars := []struct {
		key string
		v   float64
	}{
		{"initialCapital", s.InitialCapital},
		{"taxRate", s.TaxRatePercent},
		{"inflationRate", s.InflationRatePercent},
		{"avgSalary", s.AvgSalary},
		{"employeeCount", s.EmployeeCount},
		{"salaryGrowth", s.SalaryGrowthPercent},
	}
	for _, f := range scalars {
		if !finite(f.v) {
			problems = append(problems, fmt.Sprintf("%s is not a finite number", f.key))
		}
	}
	for _, e := range s.Expenses {
		problems = append(problems, itemNumbers("expense", e.LineItem)...)
		if !e.Frequency.Valid() {
			problems = append(problems, fmt.Sprintf("expense %q: unknown frequency %q", e.Name, e.Frequency))
		}
	}
	for _, r := range s.Revenues {
		problems = append(problems, itemNumbers("revenue", r.LineItem)...)
		if !finite(r.EstimatedUnits) {
			problems = append(problems, fmt.Sprintf("revenue %q: clients is not a finite number", r.Name))
		}
		if !r.Frequency.Valid() {
			problems = append(problems, fmt.Sprintf("revenue %q: unknown frequency %q", r.Name, r.Frequency))
		}
		if !r.RevenueType.Valid() {
			problems = append(problems, fmt.Sprintf("revenue %q: unknown revenue type %q", r.Name, r.RevenueType))
		}
	}
	return problems
}

func itemNumbers(kind string, li model.LineItem) []string {
	var problems []string
	if !finite(li.Amount) {
		problems = append(problems, fmt.Sprintf("%s %q: amount is not a finite number", kind, li.Name))
	}
	if !finite(li.GrowthRatePercent) {
		problems = append(problems, fmt.Sprintf("%s %q: growth is not a finite number", kind, li.Name))
	}
	return problems
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Params returns the scenario's projection input, with empty item lists
// normalized to non-nil slices.
func (s Scenario) Params() model.ScenarioParameters {
	p := s.ScenarioParameters
	if p.Expenses == nil {
		p.Expenses = []model.ExpenseItem{}
	}
	if p.Revenues == nil {
		p.Revenues = []model.RevenueItem{}
	}
	return p
}
