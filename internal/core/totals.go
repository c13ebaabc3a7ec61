package core

// Balance returns income minus expenses over the given transactions.
// A linear scan of the slice as it stands at call time, no memoization.
func Balance(txs []Transaction) float64 {
	var b float64
	for _, t := range txs {
		if t.Type == Income {
			b += t.Amount
		} else {
			b -= t.Amount
		}
	}
	return b
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(txs []Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == Income {
			sum += t.Amount
		}
	}
	return sum
}

// TotalExpense sums the amounts of all expense transactions.
func TotalExpense(txs []Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == Expense {
			sum += t.Amount
		}
	}
	return sum
}
