package commands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/forecast/internal/scenario"
)

func TestCompare(t *testing.T) {
	dir := initWorkspace(t)
	saveScenario(t, dir, "base", breakEvenParams)
	saveScenario(t, dir, "costly", strings.Replace(breakEvenParams, "amount: 1000", "amount: 5000", 1))

	out, err := runForecast(t, "-C", dir, "compare", "base", "costly")
	require.NoError(t, err)
	assert.Contains(t, out, "Metric")
	assert.Contains(t, out, "costly")
	assert.Contains(t, out, "year 3")
	assert.Contains(t, out, "not reached")
}

func TestCompare_UnknownScenario(t *testing.T) {
	dir := initWorkspace(t)
	saveScenario(t, dir, "base", breakEvenParams)

	_, err := runForecast(t, "-C", dir, "compare", "base", "missing")
	require.ErrorIs(t, err, scenario.ErrNotFound)
}
