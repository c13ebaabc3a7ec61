package core

// Stats is the aggregated totals block computed by the backend.
type Stats struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// CategorySlice is one slice of the expense-by-category breakdown.
type CategorySlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// MonthlyPoint is one point of the monthly income/expense trend.
type MonthlyPoint struct {
	Name    string  `json:"name"` // short month label, e.g. "Jan"
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
