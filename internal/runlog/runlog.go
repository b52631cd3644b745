// Package runlog records projection runs in <root>/logs/run-log.csv.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/forecast/internal/model"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp     time.Time
	Scenario      string // name, or the parameter file path
	HorizonYears  int
	BreakEvenYear int // 0 = not reached
	FinalCashFlow decimal.Decimal // zero when the projection overflowed
	TotalProfit   decimal.Decimal
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,scenario,horizon_years,break_even_year,final_cash_flow,total_profit"

const (
	numFields   = 6
	logDir      = "logs"
	logFile     = "logs/run-log.csv"
	colTime     = 0
	colScenario = 1
	colHorizon  = 2
	colBreak    = 3
	colCash     = 4
	colProfit   = 5
)

// NewEntry summarizes a finished run.
func NewEntry(at time.Time, scenario string, horizon int, m model.FinancialMetrics) Entry {
	e := Entry{
		Timestamp:     at.UTC(),
		Scenario:      scenario,
		HorizonYears:  horizon,
		FinalCashFlow: money(m.FinalCashFlow),
		TotalProfit:   money(m.TotalProfit),
	}
	if m.BreakEvenYear != nil {
		e.BreakEvenYear = *m.BreakEvenYear
	}
	return e
}

// money rounds v to cents. NaN and ±Inf, which an overflowing projection can
// produce, are logged as zero.
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colScenario] = e.Scenario
	row[colHorizon] = strconv.Itoa(e.HorizonYears)
	if e.BreakEvenYear > 0 {
		row[colBreak] = strconv.Itoa(e.BreakEvenYear)
	}
	row[colCash] = e.FinalCashFlow.StringFixed(2)
	row[colProfit] = e.TotalProfit.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}
	horizon, err := strconv.Atoi(record[colHorizon])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing horizon_years %q: %w", record[colHorizon], err)
	}
	var breakEven int
	if record[colBreak] != "" {
		breakEven, err = strconv.Atoi(record[colBreak])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing break_even_year %q: %w", record[colBreak], err)
		}
	}
	cash, err := decimal.NewFromString(record[colCash])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing final_cash_flow %q: %w", record[colCash], err)
	}
	profit, err := decimal.NewFromString(record[colProfit])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing total_profit %q: %w", record[colProfit], err)
	}

	return Entry{
		Timestamp:     ts,
		Scenario:      record[colScenario],
		HorizonYears:  horizon,
		BreakEvenYear: breakEven,
		FinalCashFlow: cash,
		TotalProfit:   profit,
	}, nil
}

// Append writes entries to <root>/logs/run-log.csv, creating the file and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}
	return f.Close()
}

// Read returns all entries from <root>/logs/run-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
