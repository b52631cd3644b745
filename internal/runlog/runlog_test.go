package runlog

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/forecast/internal/model"
)

var testTime = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:     testTime,
		Scenario:      "Base Case",
		HorizonYears:  5,
		BreakEvenYear: 3,
		FinalCashFlow: decimal.RequireFromString("48210.55"),
		TotalProfit:   decimal.RequireFromString("-1200.10"),
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Base Case", entries[0].Scenario)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Scenario = "Lean"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Base Case", entries[0].Scenario)
	assert.Equal(t, "Lean", entries[1].Scenario)

	data, err := os.ReadFile(filepath.Join(dir, logFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header), "header written once")
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.Scenario, got.Scenario)
	assert.Equal(t, original.HorizonYears, got.HorizonYears)
	assert.Equal(t, original.BreakEvenYear, got.BreakEvenYear)
	assert.True(t, original.FinalCashFlow.Equal(got.FinalCashFlow))
	assert.True(t, original.TotalProfit.Equal(got.TotalProfit))
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestNewEntry(t *testing.T) {
	year := 2
	m := model.FinancialMetrics{BreakEvenYear: &year, FinalCashFlow: 1234.5678, TotalProfit: 99.994}
	e := NewEntry(testTime, "Plan", 4, m)

	assert.Equal(t, 2, e.BreakEvenYear)
	assert.Equal(t, "1234.57", e.FinalCashFlow.StringFixed(2))
	assert.Equal(t, "99.99", e.TotalProfit.StringFixed(2))

	notReached := NewEntry(testTime, "Plan", 4, model.FinancialMetrics{})
	assert.Zero(t, notReached.BreakEvenYear)
	assert.Equal(t, "", MarshalEntry(notReached)[colBreak])
}

func TestNewEntry_NonFinite(t *testing.T) {
	m := model.FinancialMetrics{FinalCashFlow: math.NaN(), TotalProfit: math.Inf(1)}

	var e Entry
	require.NotPanics(t, func() { e = NewEntry(testTime, "overflow", 5, m) })
	assert.True(t, e.FinalCashFlow.IsZero())
	assert.True(t, e.TotalProfit.IsZero())

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.True(t, got.TotalProfit.IsZero())
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"x"})
	require.Error(t, err)

	row := MarshalEntry(testEntry())
	row[colCash] = "lots"
	_, err = UnmarshalEntry(row)
	require.Error(t, err)
}
