// Package projection simulates multi-year cash flow for a scenario and derives
// summary metrics from the resulting series.
//
// Every function in this package is pure. A run owns its series outright, so
// concurrent runs over different parameters need no coordination.
package projection

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/forecast/internal/model"
)

// ErrInvalidFrequency is returned when a line item carries a frequency the
// normalizer does not handle.
var ErrInvalidFrequency = errors.New("invalid frequency")

// Annualize converts a billed amount to its once-per-year equivalent.
// One-time amounts count at face value; their one-off nature is expressed by
// the growth shape, not here.
func Annualize(amount float64, f model.Frequency) (float64, error) {
	switch f {
	case model.FrequencyMonthly:
		return amount * 12, nil
	case model.FrequencyQuarterly:
		return amount * 4, nil
	case model.FrequencyAnnually, model.FrequencyOneTime:
		return amount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, f)
	}
}
