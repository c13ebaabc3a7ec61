package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/log"
)

// Login authenticates against the backend and adopts the returned session,
// in memory and durably, then runs the initial data load. A failed login
// leaves the store untouched. A failed follow-up refresh is recorded but
// does not fail the login.
func (s *Store) Login(ctx context.Context, creds core.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	sess, err := s.backend.Login(ctx, creds)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()

	if err := s.local.PutSession(ctx, sess); err != nil {
		s.logger.Warn("Failed to persist session", log.FieldError, err)
	}
	s.logger.Info("Logged in", log.FieldOperation, log.OpLogin, log.FieldUserID, sess.UserID)

	// Session went null -> non-null, load everything.
	if err := s.RefreshAll(ctx); err != nil {
		s.logger.Warn("Post-login refresh failed", log.FieldError, err)
	}
	return nil
}

// Logout clears the session and the collections, in memory and durably.
// Idempotent: a second call is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.transactions = nil
	s.categories = nil
	s.mu.Unlock()
	s.dash.Clear()

	if err := s.local.DeleteSession(ctx); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}
	s.logger.Info("Logged out", log.FieldOperation, log.OpLogout)
	return nil
}

// RefreshAll loads transactions (first page), categories and settings
// concurrently. All three must succeed: on any failure the error is recorded
// and the previously loaded collections stay untouched, with no partial
// overwrite.
func (s *Store) RefreshAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	var (
		txs  []core.Transaction
		cats []core.Category
		set  core.Settings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.backend.ListTransactions(gctx, 0, s.pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = s.backend.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		set, err = s.backend.GetSettings(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.setError(fmt.Sprintf("Failed to load data: %v", err))
		s.logger.Error("Refresh failed", log.FieldOperation, log.OpRefresh, log.FieldError, err)
		return err
	}

	s.mu.Lock()
	s.transactions = txs
	s.categories = cats
	// Backend settings win over the local snapshot, field by field.
	s.settings = s.settings.Merge(core.SettingsPatch(set))
	s.lastError = ""
	s.mu.Unlock()
	s.dash.Clear()
	s.applySettings(ctx)

	s.logger.Info("Refreshed data",
		log.FieldOperation, log.OpRefresh,
		"transactions", len(txs),
		"categories", len(cats))
	return nil
}

// AddTransaction submits a draft and, on success, prepends the normalized
// result to the in-memory list without re-fetching. On failure the error is
// returned to the caller and no state changes.
func (s *Store) AddTransaction(ctx context.Context, d core.TransactionDraft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}

	tx, err := s.backend.CreateTransaction(ctx, d)
	if err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	s.transactions = append([]core.Transaction{tx}, s.transactions...)
	s.mu.Unlock()
	s.dash.Clear()

	s.logger.Info("Transaction added",
		log.FieldOperation, log.OpCreate,
		log.FieldTxID, tx.ID,
		log.FieldAmount, tx.Amount)
	s.publish(ctx, events.NewEvent(events.KindTransactionCreated, tx.ID))
	return tx, nil
}

// AddCategory submits a draft and appends the normalized result on success.
func (s *Store) AddCategory(ctx context.Context, d core.CategoryDraft) (core.Category, error) {
	if err := d.Validate(); err != nil {
		return core.Category{}, err
	}

	cat, err := s.backend.CreateCategory(ctx, d)
	if err != nil {
		return core.Category{}, err
	}

	s.mu.Lock()
	s.categories = append(s.categories, cat)
	s.mu.Unlock()

	s.logger.Info("Category added",
		log.FieldOperation, log.OpCreate,
		log.FieldCategoryID, cat.ID)
	s.publish(ctx, events.NewEvent(events.KindCategoryCreated, cat.ID))
	return cat, nil
}

// DeleteCategory removes the category remotely, then from the in-memory list.
// Transactions referencing it are deliberately left alone: the backend
// relabels them into the archived bucket and the relabeling only becomes
// visible on the next RefreshAll.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.backend.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.mu.Unlock()
	s.dash.Clear()

	s.logger.Info("Category deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldCategoryID, id)
	s.publish(ctx, events.NewEvent(events.KindCategoryDeleted, id))
	return nil
}
