package core

// MonthlyStats is the aggregated summary for a specific year+month.
// CategoryStats buckets amounts per category id across both income and
// expense records; category ids are type-scoped in the catalog, so the
// combined totals never mix the two in practice.
type MonthlyStats struct {
	Year             int
	Month            int // 1-12
	TotalIncome      float64
	TotalExpense     float64
	Balance          float64
	CategoryStats    map[string]float64
	TransactionCount int
}
