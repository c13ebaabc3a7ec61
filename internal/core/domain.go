package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"

	ThemeLight = "light"
	ThemeDark  = "dark"

	// ArchivedCategory is the reserved bucket the backend moves transactions
	// into when their category is deleted. The client never assigns it itself.
	ArchivedCategory = "Archived Transactions"
)

type (
	TransactionType string

	// Session is the authenticated user snapshot returned by the backend on
	// login and persisted locally between runs.
	Session struct {
		UserID    int64  `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Token     string `json:"token"`
	}

	Transaction struct {
		ID          int64           `json:"id"`
		Amount      float64         `json:"amount"`
		Type        TransactionType `json:"type"`
		CategoryID  int64           `json:"categoryId"`
		Category    string          `json:"category"` // denormalized display name
		Date        time.Time       `json:"date"`
		Description string          `json:"description"`
	}

	Category struct {
		ID    int64           `json:"id"`
		Name  string          `json:"name"`
		Type  TransactionType `json:"type"`
		Icon  string          `json:"icon"`
		Color string          `json:"color"`
	}

	Settings struct {
		Currency string `json:"currency"`
		Language string `json:"language"`
		Theme    string `json:"theme"`
	}

	// SettingsPatch carries only the fields the caller wants to change.
	SettingsPatch struct {
		Currency string `json:"currency,omitempty"`
		Language string `json:"language,omitempty"`
		Theme    string `json:"theme,omitempty"`
	}

	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	Registration struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	// TransactionDraft is a client-side transaction before the backend has
	// assigned it an id.
	TransactionDraft struct {
		Amount      float64
		Type        TransactionType
		CategoryID  int64
		Date        time.Time
		Description string
	}

	CategoryDraft struct {
		Name  string
		Type  TransactionType
		Icon  string
		Color string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrZeroDate         = errors.New("date cannot be zero")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty category name")
	ErrEmptyColor       = errors.New("empty category color")
	ErrEmptyEmail       = errors.New("empty email")
	ErrEmptyPassword    = errors.New("empty password")
)

// DefaultSettings are used when no settings snapshot exists locally.
func DefaultSettings() Settings {
	return Settings{Currency: "EUR", Language: "en", Theme: ThemeLight}
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// ParseTransactionType normalizes a type token of any casing. The backend
// speaks upper-case tokens; the client speaks lower-case.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

func (d TransactionDraft) Validate() error {
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if d.Date.IsZero() {
		return ErrZeroDate
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	if len(d.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

func (d CategoryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(d.Color) == "" {
		return ErrEmptyColor
	}
	return nil
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmptyEmail
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (r Registration) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("first and last name are required")
	}
	return nil
}

func (s Settings) Validate() error {
	if len(s.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}
	if len(s.Language) != 2 {
		return errors.New("language must be a 2-letter code")
	}
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		return errors.New("theme must be light or dark")
	}
	return nil
}

// Merge applies the non-empty fields of a patch on top of the settings.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.Currency != "" {
		s.Currency = p.Currency
	}
	if p.Language != "" {
		s.Language = p.Language
	}
	if p.Theme != "" {
		s.Theme = p.Theme
	}
	return s
}
