package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewScenarioID returns a fresh scenario ID.
func NewScenarioID() string {
	return uuid.NewString()
}

// NextItemID returns the next free line-item ID: one past the largest in use,
// or 1 for an empty list.
func NextItemID(ids []int) int {
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// ShortScenarioID returns the first block of a UUID scenario ID for display.
// "1b4e28ba-2fa1-11d2-883f-0016d3cca427" -> "1b4e28ba"
func ShortScenarioID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// ParseScenarioID validates a scenario ID. Legacy exports carry millisecond
// timestamps instead of UUIDs; those are accepted as-is.
func ParseScenarioID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("empty scenario ID")
	}
	if u, err := uuid.Parse(id); err == nil {
		return u.String(), nil
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid scenario ID %q", id)
		}
	}
	return id, nil
}
