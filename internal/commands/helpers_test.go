package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/forecast/internal/commands"
)

// runForecast executes the CLI in-process and returns its standard output.
func runForecast(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// initWorkspace creates a workspace with auto-commit disabled.
func initWorkspace(t *testing.T) string {
	t.Helper()
	t.Setenv("FORECAST_AUTO_COMMIT", "false")
	dir := t.TempDir()
	_, err := runForecast(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)
	return dir
}

// breakEvenParams breaks even in year 3 with no tax:
// cumulative profit -500, -750, -625, 62.5.
const breakEvenParams = `initialCapital: 10000
taxRate: 0
inflationRate: 0
years: 4
avgSalary: 0
employeeCount: 0
salaryGrowth: 0
expenses:
  - name: Rent
    amount: 1000
    frequency: annually
    growth: 0
    category: Rent
revenues:
  - name: Sales
    amount: 500
    frequency: annually
    growth: 50
    category: Product Sales
    revenueType: recurring
    clients: 1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
