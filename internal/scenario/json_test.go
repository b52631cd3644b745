package scenario

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/forecast/internal/model"
)

func sampleScenario() Scenario {
	return Scenario{
		ID:          "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		Name:        "Optimistic Growth Plan",
		Description: "Two hires, aggressive subscriptions",
		Date:        time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC),
		ScenarioParameters: model.ScenarioParameters{
			InitialCapital:       25000,
			TaxRatePercent:       9,
			InflationRatePercent: 3,
			HorizonYears:         5,
			AvgSalary:            45000,
			EmployeeCount:        2,
			SalaryGrowthPercent:  4,
			Expenses: []model.ExpenseItem{{LineItem: model.LineItem{
				ID: 1, Name: "Website Hosting", Amount: 1200, Frequency: model.FrequencyAnnually,
				GrowthRatePercent: 5, Category: "Technology",
			}}},
			Revenues: []model.RevenueItem{{
				LineItem: model.LineItem{
					ID: 1, Name: "Basic Plan", Amount: 29, Frequency: model.FrequencyMonthly,
					GrowthRatePercent: 15, Category: "Subscriptions",
				},
				RevenueType:    model.RevenueSubscription,
				EstimatedUnits: 100,
			}},
		},
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	in := []Scenario{sampleScenario()}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, in))

	res, err := Import(&buf)
	require.NoError(t, err)
	assert.Empty(t, res.Rejected)
	require.Len(t, res.Scenarios, 1)
	assert.Equal(t, in[0], res.Scenarios[0])
}

func TestExportWireFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, []Scenario{sampleScenario()}))
	out := buf.String()

	for _, key := range []string{
		`"initialCapital": 25000`, `"taxRate": 9`, `"years": 5`, `"salaryGrowth": 4`,
		`"growth": 15`, `"revenueType": "subscription"`, `"clients": 100`,
		`"date": "2026-03-01T09:30:00Z"`,
	} {
		assert.Contains(t, out, key)
	}
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestExportNilItemsReimport(t *testing.T) {
	s := sampleScenario()
	s.Expenses = nil
	s.Revenues = nil

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, []Scenario{s}))
	assert.Contains(t, buf.String(), `"expenses": []`)

	res, err := Import(&buf)
	require.NoError(t, err)
	assert.Empty(t, res.Rejected)
	require.Len(t, res.Scenarios, 1)
}

const legacyRecord = `{
  "id": "1712345678901",
  "name": "Base Case",
  "description": "",
  "date": "2024-04-05T18:21:18.901Z",
  "initialCapital": 0,
  "taxRate": 9,
  "inflationRate": 3,
  "years": 1,
  "avgSalary": 0,
  "employeeCount": 0,
  "salaryGrowth": 0,
  "expenses": [{"id": 1, "name": "Website Hosting", "amount": 1200, "growth": 5, "frequency": "annually", "category": "Technology", "type": "expense"}],
  "revenues": [{"id": 1, "name": "Basic Plan", "amount": 29, "growth": 15, "revenueType": "subscription", "frequency": "monthly", "category": "Subscriptions", "clients": 100, "type": "revenue"}],
  "chartTheme": "dark"
}`

func TestImportIgnoresUnknownFields(t *testing.T) {
	res, err := Import(strings.NewReader("[" + legacyRecord + "]"))
	require.NoError(t, err)
	require.Empty(t, res.Rejected)
	require.Len(t, res.Scenarios, 1)

	s := res.Scenarios[0]
	assert.Equal(t, "1712345678901", s.ID)
	assert.Equal(t, 1, s.HorizonYears)
	assert.Equal(t, model.RevenueSubscription, s.Revenues[0].RevenueType)
	assert.Equal(t, 100.0, s.Revenues[0].EstimatedUnits)
	assert.Equal(t, 2024, s.Date.Year())
}

func TestImportRejectsIncompleteRecordsIndividually(t *testing.T) {
	noTax := strings.Replace(legacyRecord, `"taxRate": 9,`, "", 1)
	noClients := strings.Replace(legacyRecord, `"clients": 100, `, "", 1)
	in := "[" + legacyRecord + "," + noTax + "," + noClients + "]"

	res, err := Import(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, res.Scenarios, 1)
	require.Len(t, res.Rejected, 2)

	assert.Equal(t, 1, res.Rejected[0].Index)
	assert.Contains(t, res.Rejected[0].Problems, "missing taxRate")
	assert.Equal(t, 2, res.Rejected[1].Index)
	assert.Contains(t, res.Rejected[1].Problems, "missing revenues[0].clients")
	assert.Contains(t, res.Rejected[1].Error(), "record 2 [1712345678901]")
}

func TestImportRejectsNullParameter(t *testing.T) {
	nullCapital := strings.Replace(legacyRecord, `"initialCapital": 0`, `"initialCapital": null`, 1)
	res, err := Import(strings.NewReader("[" + nullCapital + "]"))
	require.NoError(t, err)
	assert.Empty(t, res.Scenarios)
	require.Len(t, res.Rejected, 1)
	assert.Contains(t, res.Rejected[0].Problems, "missing initialCapital")
}

func TestImportRejectsUnknownEnums(t *testing.T) {
	badFreq := strings.Replace(legacyRecord, `"frequency": "annually"`, `"frequency": "weekly"`, 1)
	badType := strings.Replace(legacyRecord, `"revenueType": "subscription"`, `"revenueType": "lease"`, 1)

	res, err := Import(strings.NewReader("[" + badFreq + "," + badType + "]"))
	require.NoError(t, err)
	assert.Empty(t, res.Scenarios)
	require.Len(t, res.Rejected, 2)
	assert.Contains(t, res.Rejected[0].Error(), `unknown frequency "weekly"`)
	assert.Contains(t, res.Rejected[1].Error(), `unknown revenue type "lease"`)
}

func TestImportNotAnArray(t *testing.T) {
	_, err := Import(strings.NewReader(legacyRecord))
	require.Error(t, err)

	_, err = Import(strings.NewReader("[{"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	s := sampleScenario()
	assert.Empty(t, Validate(s))

	s.HorizonYears = 0
	s.Name = " "
	problems := Validate(s)
	assert.Len(t, problems, 2)
}

func TestValidate_NonFinite(t *testing.T) {
	s := sampleScenario()
	s.TaxRatePercent = math.Inf(1)
	s.Expenses[0].Amount = math.NaN()
	s.Revenues[0].EstimatedUnits = math.Inf(-1)

	problems := Validate(s)
	assert.Contains(t, problems, "taxRate is not a finite number")
	assert.Len(t, problems, 3)
}

func TestParamsNormalizesNilSlices(t *testing.T) {
	p := Scenario{}.Params()
	assert.NotNil(t, p.Expenses)
	assert.NotNil(t, p.Revenues)
}
