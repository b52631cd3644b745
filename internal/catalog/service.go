// Package catalog holds the categories line items are grouped under.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kind says which side of the ledger a category belongs to.
type Kind string

const (
	KindExpense Kind = "expense"
	KindRevenue Kind = "revenue"
)

// Category is a row in categories.csv.
type Category struct {
	Kind  Kind
	Name  string
	Color string // chart color, hex
}

type key struct {
	kind Kind
	name string
}

// Service provides in-memory lookup over a category list.
type Service struct {
	categories []Category
	byKey      map[key]Category
}

// NewService creates a Service from a slice of categories.
func NewService(categories []Category) *Service {
	byKey := make(map[key]Category, len(categories))
	for _, c := range categories {
		byKey[key{c.Kind, c.Name}] = c
	}
	return &Service{categories: categories, byKey: byKey}
}

const fileName = "categories.csv"

// Load reads categories.csv from a workspace root. A workspace without the
// file uses the defaults.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, fileName)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewService(DefaultCategories()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening categories: %w", err)
	}
	defer f.Close()

	cats, err := ReadCategories(f)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return NewService(cats), nil
}

// Save writes the categories to <root>/categories.csv.
func (s *Service) Save(root string) error {
	f, err := os.Create(filepath.Join(root, fileName))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, s.categories); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return f.Close()
}

// All returns every category.
func (s *Service) All() []Category {
	return s.categories
}

// ByKind returns the categories of one kind, in file order.
func (s *Service) ByKind(kind Kind) []Category {
	var result []Category
	for _, c := range s.categories {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// Known reports whether name is a category of the given kind.
func (s *Service) Known(kind Kind, name string) bool {
	_, ok := s.byKey[key{kind, name}]
	return ok
}

// Color returns the chart color for a category, or fallback if unknown.
func (s *Service) Color(kind Kind, name, fallback string) string {
	if c, ok := s.byKey[key{kind, name}]; ok && c.Color != "" {
		return c.Color
	}
	return fallback
}
