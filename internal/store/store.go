// Package store holds the application state of the front-end: session,
// transaction and category collections, settings, and the action functions
// that call the backend and reconcile local state. A Store is constructed
// explicitly and passed by reference; there is no package-level instance.
package store

import (
	"context"
	"sync"
	"time"

	"fintrack/internal/auth"
	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/log"
)

// Config wires a Store. Backend and Local are required; the rest defaults.
type Config struct {
	Backend    Backend
	Local      Local
	Appearance Appearance
	Publisher  Publisher
	Logger     *log.Logger

	PageSize  int // transactions fetched on a full refresh
	CacheSize int // dashboard cache entries
	CacheTTL  time.Duration
}

type Store struct {
	backend    Backend
	local      Local
	appearance Appearance
	publisher  Publisher
	logger     *log.Logger
	pageSize   int

	dash *cache.LRU[any]

	mu           sync.Mutex
	session      *core.Session
	transactions []core.Transaction
	categories   []core.Category
	settings     core.Settings
	loading      bool
	lastError    string
}

// New builds a Store from the durable snapshots. A missing or corrupt
// snapshot degrades to "no session, default settings"; a session whose token
// is already expired is discarded, durably. When a live session is adopted
// the initial full refresh runs before New returns; its failure is recorded,
// not fatal.
func New(ctx context.Context, cfg Config) *Store {
	if cfg.Logger == nil {
		cfg.Logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentStore)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 16
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}

	s := &Store{
		backend:    cfg.Backend,
		local:      cfg.Local,
		appearance: cfg.Appearance,
		publisher:  cfg.Publisher,
		logger:     cfg.Logger,
		pageSize:   cfg.PageSize,
		dash:       cache.NewLRU[any](cfg.CacheSize, cfg.CacheTTL),
		settings:   core.DefaultSettings(),
	}

	if set, ok := s.local.Settings(ctx); ok && set.Validate() == nil {
		s.settings = set
	}
	s.applySettings(ctx)

	if sess, ok := s.local.Session(ctx); ok {
		if auth.IsTokenExpired(sess.Token) {
			s.logger.Info("Stored session expired, discarding", log.FieldUserID, sess.UserID)
			if err := s.local.DeleteSession(ctx); err != nil {
				s.logger.Warn("Failed to remove expired session", log.FieldError, err)
			}
		} else {
			s.session = &sess
			if err := s.RefreshAll(ctx); err != nil {
				s.logger.Warn("Initial refresh failed", log.FieldError, err)
			}
		}
	}

	return s
}

// ForceLogout drops the in-memory session and collections without touching
// the backend. Wired as the API client's unauthorized hook.
func (s *Store) ForceLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.transactions = nil
	s.categories = nil
	s.dash.Clear()
}

// Session returns the current session, if any.
func (s *Store) Session() (core.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return core.Session{}, false
	}
	return *s.session, true
}

// Transactions returns a copy of the in-memory transaction list.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns a copy of the in-memory category list.
func (s *Store) Categories() []core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) Settings() core.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the most recent user-visible error message, if any.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Balance is income minus expenses over the exact in-memory list at call
// time, including optimistic appends.
func (s *Store) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Balance(s.transactions)
}

func (s *Store) TotalIncome() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.TotalIncome(s.transactions)
}

func (s *Store) TotalExpense() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.TotalExpense(s.transactions)
}

// applySettings persists the settings snapshot and pushes the presentation
// switches. Runs on every settings change, whatever the path.
func (s *Store) applySettings(ctx context.Context) {
	s.mu.Lock()
	set := s.settings
	s.mu.Unlock()

	if err := s.local.PutSettings(ctx, set); err != nil {
		s.logger.Warn("Failed to persist settings", log.FieldError, err)
	}
	if s.appearance != nil {
		s.appearance.Apply(set)
	}
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

// publish emits a mutation event, best effort.
func (s *Store) publish(ctx context.Context, event *events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "kind", event.Kind, log.FieldError, err)
	}
}
