package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	svc := NewService(DefaultCategories())

	assert.Len(t, svc.ByKind(KindExpense), 12)
	assert.Len(t, svc.ByKind(KindRevenue), 8)
	assert.True(t, svc.Known(KindExpense, "Rent"))
	assert.True(t, svc.Known(KindRevenue, "Subscriptions"))
	assert.False(t, svc.Known(KindRevenue, "Rent"), "Rent is an expense category")
	assert.True(t, svc.Known(KindExpense, "Other"))
	assert.True(t, svc.Known(KindRevenue, "Other"))
}

func TestColor(t *testing.T) {
	svc := NewService(DefaultCategories())
	assert.Equal(t, "#52ff7b", svc.Color(KindExpense, "Rent", "#ff0a3f"))
	assert.Equal(t, "#ff0a3f", svc.Color(KindExpense, "Snacks", "#ff0a3f"))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Len(t, svc.All(), len(DefaultCategories()))
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	custom := []Category{
		{Kind: KindExpense, Name: "Coffee", Color: "#6f4e37"},
		{Kind: KindRevenue, Name: "Tips"},
	}
	require.NoError(t, NewService(custom).Save(dir))

	svc, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, custom, svc.All())
	assert.False(t, svc.Known(KindExpense, "Rent"))
}
