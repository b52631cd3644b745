package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/forecast/internal/config"
	"github.com/cleared-dev/forecast/internal/id"
	"github.com/cleared-dev/forecast/internal/model"
)

// loadParams reads a parameter file. Files ending in .json are decoded as
// JSON, everything else as YAML. Tax, inflation, horizon and the item lists
// fall back to the workspace defaults when the file leaves them out.
func loadParams(path string, defaults config.DefaultsConfig) (model.ScenarioParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ScenarioParameters{}, fmt.Errorf("reading parameters: %w", err)
	}

	p := model.ScenarioParameters{
		TaxRatePercent:       defaults.TaxRatePercent,
		InflationRatePercent: defaults.InflationRatePercent,
		HorizonYears:         defaults.HorizonYears,
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &p)
	default:
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		return model.ScenarioParameters{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	// An absent or null list decodes as nil; an explicit [] does not.
	if p.Expenses == nil {
		p.Expenses = slices.Clone(defaults.Expenses)
	}
	if p.Revenues == nil {
		p.Revenues = slices.Clone(defaults.Revenues)
	}

	assignItemIDs(&p)
	return p, nil
}

// assignItemIDs numbers items that came without an ID.
func assignItemIDs(p *model.ScenarioParameters) {
	var expenseIDs []int
	for _, e := range p.Expenses {
		expenseIDs = append(expenseIDs, e.ID)
	}
	for i := range p.Expenses {
		if p.Expenses[i].ID == 0 {
			p.Expenses[i].ID = id.NextItemID(expenseIDs)
			expenseIDs = append(expenseIDs, p.Expenses[i].ID)
		}
	}

	var revenueIDs []int
	for _, r := range p.Revenues {
		revenueIDs = append(revenueIDs, r.ID)
	}
	for i := range p.Revenues {
		if p.Revenues[i].ID == 0 {
			p.Revenues[i].ID = id.NextItemID(revenueIDs)
			revenueIDs = append(revenueIDs, p.Revenues[i].ID)
		}
	}
}
