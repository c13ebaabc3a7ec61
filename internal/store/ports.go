package store

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/events"
)

// Ports for the store's collaborators. The API client satisfies Backend, the
// local SQLite store satisfies Local; tests swap in fakes.
type (
	// Backend is everything the store needs from the remote REST API.
	Backend interface {
		Login(ctx context.Context, creds core.Credentials) (core.Session, error)
		ListTransactions(ctx context.Context, page, size int) ([]core.Transaction, error)
		CreateTransaction(ctx context.Context, d core.TransactionDraft) (core.Transaction, error)
		ListCategories(ctx context.Context) ([]core.Category, error)
		CreateCategory(ctx context.Context, d core.CategoryDraft) (core.Category, error)
		DeleteCategory(ctx context.Context, id int64) error
		GetSettings(ctx context.Context) (core.Settings, error)
		UpdateSettings(ctx context.Context, p core.SettingsPatch) (core.Settings, error)
		Stats(ctx context.Context) (core.Stats, error)
		ExpenseByCategory(ctx context.Context) ([]core.CategorySlice, error)
		MonthlyAnalysis(ctx context.Context) ([]core.MonthlyPoint, error)
	}

	// Local is the durable snapshot storage for session and settings.
	Local interface {
		Session(ctx context.Context) (core.Session, bool)
		PutSession(ctx context.Context, sess core.Session) error
		DeleteSession(ctx context.Context) error
		Settings(ctx context.Context) (core.Settings, bool)
		PutSettings(ctx context.Context, set core.Settings) error
	}

	// Appearance receives the process-wide presentation switches whenever
	// settings change by any path: visual mode, text direction, language tag.
	Appearance interface {
		Apply(set core.Settings)
	}

	// Publisher emits mutation events. Optional; nil disables publishing.
	Publisher interface {
		Publish(ctx context.Context, event *events.Event) error
	}
)
