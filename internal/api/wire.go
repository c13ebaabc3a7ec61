package api

import (
	"strings"
	"time"

	"fintrack/internal/core"
)

// wireTransaction is a transaction as the backend serves it.
type wireTransaction struct {
	ID                      int64     `json:"id"`
	Amount                  float64   `json:"amount"`
	Type                    string    `json:"type"` // "INCOME" | "EXPENSE"
	Date                    time.Time `json:"date"`
	Description             string    `json:"description"`
	Currency                string    `json:"currency,omitempty"`
	TransactionCategoryID   int64     `json:"transactionCategoryId"`
	TransactionCategoryName string    `json:"transactionCategoryName,omitempty"`
	Category                string    `json:"category,omitempty"`
}

// createTransactionRequest is the outbound shape for creates and updates.
type createTransactionRequest struct {
	Amount                float64 `json:"amount"`
	Type                  string  `json:"type"` // upper-case
	Date                  string  `json:"date"` // RFC 3339
	Description           string  `json:"description"`
	TransactionCategoryID int64   `json:"transactionCategoryId"`
}

type wireCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// wireSettings tolerates the backend's extra isRtl field.
type wireSettings struct {
	Currency string `json:"currency"`
	Language string `json:"language"`
	Theme    string `json:"theme"`
	IsRtl    bool   `json:"isRtl,omitempty"`
}

func (w wireTransaction) toDomain() core.Transaction {
	t := core.Transaction{
		ID:          w.ID,
		Amount:      w.Amount,
		Type:        core.TransactionType(strings.ToLower(w.Type)),
		CategoryID:  w.TransactionCategoryID,
		Date:        w.Date,
		Description: w.Description,
	}
	// Prefer the denormalized category name; some backends send a plain
	// category field instead.
	if w.TransactionCategoryName != "" {
		t.Category = w.TransactionCategoryName
	} else {
		t.Category = w.Category
	}
	return t
}

func (w wireCategory) toDomain() core.Category {
	return core.Category{
		ID:    w.ID,
		Name:  w.Name,
		Type:  core.TransactionType(strings.ToLower(w.Type)),
		Icon:  w.Icon,
		Color: w.Color,
	}
}

func (w wireSettings) toDomain() core.Settings {
	return core.Settings{
		Currency: w.Currency,
		Language: w.Language,
		Theme:    w.Theme,
	}
}
