package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
)

const (
	numFields = 3
	colKind   = 0
	colName   = 1
	colColor  = 2
)

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var cats []Category
	for i, rec := range records[1:] {
		c, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// WriteCategories writes categories.csv.
func WriteCategories(w io.Writer, cats []Category) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"kind", "name", "color"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range cats {
		if err := cw.Write(MarshalCategory(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(c Category) []string {
	row := make([]string, numFields)
	row[colKind] = string(c.Kind)
	row[colName] = c.Name
	row[colColor] = c.Color
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (Category, error) {
	if len(record) != numFields {
		return Category{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	kind := Kind(record[colKind])
	if kind != KindExpense && kind != KindRevenue {
		return Category{}, fmt.Errorf("unknown kind %q", record[colKind])
	}
	if record[colName] == "" {
		return Category{}, fmt.Errorf("category name is required")
	}
	return Category{
		Kind:  kind,
		Name:  record[colName],
		Color: record[colColor],
	}, nil
}
