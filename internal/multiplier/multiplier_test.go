package multiplier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	row := Expand(Item{Name: "Website Subscription", Amount: 50, Kind: KindExpense})

	assert.Equal(t, 50.0, row.Months[0])
	assert.Equal(t, 300.0, row.Months[5])
	assert.Equal(t, 600.0, row.Months[11])
	assert.Equal(t, 600.0, row.Years[0])
	assert.Equal(t, 3000.0, row.Years[4])
}

func TestNet(t *testing.T) {
	items := []Item{
		{Name: "Website Subscription", Amount: 50, Kind: KindExpense},
		{Name: "Basic Plan Revenue", Amount: 129, Kind: KindRevenue},
	}
	assert.Equal(t, 79.0, Net(items))
	assert.Zero(t, Net(nil))
}

func TestCheckpoints(t *testing.T) {
	items := []Item{{Name: "Plan", Amount: 10, Kind: KindRevenue}}
	cps := Checkpoints(items)
	require.Len(t, cps, len(CheckpointMonths))
	assert.Equal(t, 1, cps[0].Month)
	assert.Equal(t, 10.0, cps[0].Totals["Plan"])
	assert.Equal(t, 60, cps[len(cps)-1].Month)
	assert.Equal(t, 600.0, cps[len(cps)-1].Totals["Plan"])
}

func TestExpandAll(t *testing.T) {
	rows := ExpandAll([]Item{{Name: "a", Amount: 1}, {Name: "b", Amount: 2}})
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[1].Item.Name)
	assert.Equal(t, 24.0, rows[1].Years[0])
}
