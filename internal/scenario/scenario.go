// Package scenario persists named parameter sets and moves them in and out of
// the JSON export format.
package scenario

import (
	"context"
	"errors"
	"time"

	"github.com/cleared-dev/forecast/internal/model"
)

// ErrNotFound is returned when no scenario matches a lookup.
var ErrNotFound = errors.New("scenario not found")

// Scenario is a named, dated snapshot of projection parameters.
type Scenario struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`

	model.ScenarioParameters
}

// Store is a key-value store of scenarios keyed by ID.
type Store interface {
	// Save inserts s, or replaces the scenario with the same ID.
	Save(ctx context.Context, s Scenario) error
	Get(ctx context.Context, id string) (Scenario, error)
	// FindByName returns the most recently saved scenario called name.
	FindByName(ctx context.Context, name string) (Scenario, error)
	// List returns every scenario, oldest first.
	List(ctx context.Context) ([]Scenario, error)
	Delete(ctx context.Context, id string) error
}

// Resolve looks up a scenario by ID, falling back to name.
func Resolve(ctx context.Context, st Store, ref string) (Scenario, error) {
	s, err := st.Get(ctx, ref)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Scenario{}, err
	}
	return st.FindByName(ctx, ref)
}
