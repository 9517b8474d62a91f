// Package categories holds the static category catalog. Categories are
// not persisted; the list ships with the application and transactions
// reference entries by id.
package categories

import "masroufi/internal/core"

// Category is a static classification label with a display icon,
// scoped to income or expense.
type Category struct {
	ID     string
	Name   string
	NameAr string
	Icon   string
	Type   core.TransactionType
}

var expenseCategories = []Category{
	{ID: "1", Name: "Food", NameAr: "طعام", Icon: "🍔", Type: core.Expense},
	{ID: "2", Name: "Transport", NameAr: "نقل", Icon: "🚗", Type: core.Expense},
	{ID: "3", Name: "Rent", NameAr: "إيجار", Icon: "🏠", Type: core.Expense},
	{ID: "4", Name: "Bills", NameAr: "فواتير", Icon: "💡", Type: core.Expense},
	{ID: "5", Name: "Leisure", NameAr: "ترفيه", Icon: "🎉", Type: core.Expense},
	{ID: "6", Name: "Health", NameAr: "صحة", Icon: "🏥", Type: core.Expense},
	{ID: "7", Name: "Shopping", NameAr: "تسوق", Icon: "🛍️", Type: core.Expense},
	{ID: "8", Name: "Education", NameAr: "تعليم", Icon: "📚", Type: core.Expense},
}

var incomeCategories = []Category{
	{ID: "9", Name: "Salary", NameAr: "راتب", Icon: "💰", Type: core.Income},
	{ID: "10", Name: "Business", NameAr: "أعمال", Icon: "💼", Type: core.Income},
	{ID: "11", Name: "Investment", NameAr: "استثمار", Icon: "📈", Type: core.Income},
	{ID: "12", Name: "Gift", NameAr: "هدية", Icon: "🎁", Type: core.Income},
	{ID: "13", Name: "Other", NameAr: "أخرى", Icon: "💵", Type: core.Income},
}

// All returns every category in catalog order, expenses first.
func All() []Category {
	out := make([]Category, 0, len(expenseCategories)+len(incomeCategories))
	out = append(out, expenseCategories...)
	out = append(out, incomeCategories...)
	return out
}

// ForType returns the categories for one transaction type, in catalog
// order.
func ForType(t core.TransactionType) []Category {
	switch t {
	case core.Expense:
		return append([]Category(nil), expenseCategories...)
	case core.Income:
		return append([]Category(nil), incomeCategories...)
	default:
		return nil
	}
}

// ByID looks up a category by id. The second return is false when the
// id is not in the catalog.
func ByID(id string) (Category, bool) {
	for _, c := range All() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
