package catalog

import "github.com/cleared-dev/forecast/internal/model"

// DefaultCategories returns the built-in expense and revenue categories.
func DefaultCategories() []Category {
	return []Category{
		{Kind: KindExpense, Name: "Technology", Color: "#ff5252"},
		{Kind: KindExpense, Name: "Office", Color: "#ff7b52"},
		{Kind: KindExpense, Name: "Marketing", Color: "#ffa352"},
		{Kind: KindExpense, Name: "Legal", Color: "#ffcb52"},
		{Kind: KindExpense, Name: "Administrative", Color: "#ffe552"},
		{Kind: KindExpense, Name: "Software", Color: "#d6ff52"},
		{Kind: KindExpense, Name: "Hardware", Color: "#a3ff52"},
		{Kind: KindExpense, Name: "Rent", Color: "#52ff7b"},
		{Kind: KindExpense, Name: "Utilities", Color: "#52ffd6"},
		{Kind: KindExpense, Name: "Insurance", Color: "#52cbff"},
		{Kind: KindExpense, Name: model.DefaultCategory, Color: "#527bff"},
		{Kind: KindExpense, Name: model.EmployeeCostsKey, Color: "#c952ff"},
		{Kind: KindRevenue, Name: "Product Sales", Color: "#00e676"},
		{Kind: KindRevenue, Name: "Services", Color: "#00e6aa"},
		{Kind: KindRevenue, Name: "Consulting", Color: "#00e6e6"},
		{Kind: KindRevenue, Name: "Subscriptions", Color: "#00aae6"},
		{Kind: KindRevenue, Name: "Licensing", Color: "#0076e6"},
		{Kind: KindRevenue, Name: "Advertising", Color: "#4300e6"},
		{Kind: KindRevenue, Name: "Partnerships", Color: "#7600e6"},
		{Kind: KindRevenue, Name: model.DefaultCategory, Color: "#aa00e6"},
	}
}
