package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
)

// Login exchanges credentials for a session. No token is attached; the
// endpoint is unauthenticated.
func (c *Client) Login(ctx context.Context, creds core.Credentials) (core.Session, error) {
	var sess core.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &sess); err != nil {
		return core.Session{}, fmt.Errorf("login: %w", err)
	}
	return sess, nil
}

func (c *Client) Register(ctx context.Context, reg core.Registration) error {
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// ListTransactions fetches one page. The backend answers either a paged
// envelope {"content": [...]} or a bare array; both are accepted.
func (c *Client) ListTransactions(ctx context.Context, page, size int) ([]core.Transaction, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/transactions", query, nil, &raw); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var wires []wireTransaction
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") {
		var paged struct {
			Content []wireTransaction `json:"content"`
		}
		if err := json.Unmarshal(raw, &paged); err != nil {
			return nil, fmt.Errorf("decode transactions page: %w", err)
		}
		wires = paged.Content
	} else if err := json.Unmarshal(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	txs := make([]core.Transaction, len(wires))
	for i, w := range wires {
		txs[i] = w.toDomain()
	}
	return txs, nil
}

// CreateTransaction submits a draft. Type goes out upper-cased and the date
// as a fully qualified RFC 3339 timestamp in UTC.
func (c *Client) CreateTransaction(ctx context.Context, d core.TransactionDraft) (core.Transaction, error) {
	req := createTransactionRequest{
		Amount:                d.Amount,
		Type:                  strings.ToUpper(string(d.Type)),
		Date:                  d.Date.UTC().Format(time.RFC3339),
		Description:           d.Description,
		TransactionCategoryID: d.CategoryID,
	}
	var w wireTransaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, req, &w); err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return w.toDomain(), nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id int64, d core.TransactionDraft) (core.Transaction, error) {
	req := createTransactionRequest{
		Amount:                d.Amount,
		Type:                  strings.ToUpper(string(d.Type)),
		Date:                  d.Date.UTC().Format(time.RFC3339),
		Description:           d.Description,
		TransactionCategoryID: d.CategoryID,
	}
	var w wireTransaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+strconv.FormatInt(id, 10), nil, req, &w); err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}
	return w.toDomain(), nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/transactions/"+strconv.FormatInt(id, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return nil
}

func (c *Client) ListCategories(ctx context.Context) ([]core.Category, error) {
	var wires []wireCategory
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &wires); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	cats := make([]core.Category, len(wires))
	for i, w := range wires {
		cats[i] = w.toDomain()
	}
	return cats, nil
}

func (c *Client) CreateCategory(ctx context.Context, d core.CategoryDraft) (core.Category, error) {
	req := createCategoryRequest{
		Name:  d.Name,
		Type:  strings.ToUpper(string(d.Type)),
		Icon:  d.Icon,
		Color: d.Color,
	}
	var w wireCategory
	if err := c.do(ctx, http.MethodPost, "/categories", nil, req, &w); err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return w.toDomain(), nil
}

// DeleteCategory removes a category. The backend relabels the category's
// transactions into the archived bucket; the client sees that on the next
// full refresh, never locally.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/categories/"+strconv.FormatInt(id, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

func (c *Client) Stats(ctx context.Context) (core.Stats, error) {
	var stats core.Stats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return core.Stats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

func (c *Client) ExpenseByCategory(ctx context.Context) ([]core.CategorySlice, error) {
	var slices []core.CategorySlice
	if err := c.do(ctx, http.MethodGet, "/dashboard/expense-by-category", nil, nil, &slices); err != nil {
		return nil, fmt.Errorf("expense by category: %w", err)
	}
	return slices, nil
}

func (c *Client) MonthlyAnalysis(ctx context.Context) ([]core.MonthlyPoint, error) {
	var points []core.MonthlyPoint
	if err := c.do(ctx, http.MethodGet, "/dashboard/monthly-analysis", nil, nil, &points); err != nil {
		return nil, fmt.Errorf("monthly analysis: %w", err)
	}
	return points, nil
}

func (c *Client) GetSettings(ctx context.Context) (core.Settings, error) {
	var w wireSettings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &w); err != nil {
		return core.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return w.toDomain(), nil
}

// UpdateSettings pushes only the fields present in the patch.
func (c *Client) UpdateSettings(ctx context.Context, p core.SettingsPatch) (core.Settings, error) {
	var w wireSettings
	if err := c.do(ctx, http.MethodPut, "/settings", nil, p, &w); err != nil {
		return core.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	return w.toDomain(), nil
}
