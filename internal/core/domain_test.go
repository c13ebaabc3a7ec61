package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseTransactionType(t *testing.T) {
	cases := []struct {
		in   string
		want TransactionType
		ok   bool
	}{
		{"INCOME", Income, true},
		{"income", Income, true},
		{"Expense", Expense, true},
		{" EXPENSE ", Expense, true},
		{"transfer", "", false},
		{"", "", false},
	}
	for i, tc := range cases {
		got, err := ParseTransactionType(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("case %d: got (%q, %v), want %q", i, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d: expected error for %q", i, tc.in)
		}
	}
}

func TestTransactionDraftValidate(t *testing.T) {
	good := TransactionDraft{
		Amount:      10,
		Type:        Expense,
		CategoryID:  1,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "groceries",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		mutate func(*TransactionDraft)
		want   error
	}{
		{func(d *TransactionDraft) { d.Amount = 0 }, ErrInvalidAmount},
		{func(d *TransactionDraft) { d.Amount = -5 }, ErrInvalidAmount},
		{func(d *TransactionDraft) { d.Type = "transfer" }, ErrInvalidType},
		{func(d *TransactionDraft) { d.Date = time.Time{} }, ErrZeroDate},
		{func(d *TransactionDraft) { d.Description = "  " }, ErrEmptyDescription},
	}
	for i, tc := range cases {
		d := good
		tc.mutate(&d)
		if err := d.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d: got %v, want %v", i, err, tc.want)
		}
	}
}

func TestCategoryDraftValidate(t *testing.T) {
	good := CategoryDraft{Name: "Food", Type: Expense, Icon: "🍔", Color: "#ff0000"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []CategoryDraft{
		{Name: "", Type: Expense, Color: "#fff"},
		{Name: "Food", Type: "other", Color: "#fff"},
		{Name: "Food", Type: Income, Color: ""},
	}
	for i, d := range bads {
		if err := d.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings must validate, got %v", err)
	}
	bads := []Settings{
		{Currency: "EURO", Language: "en", Theme: ThemeLight},
		{Currency: "EUR", Language: "eng", Theme: ThemeLight},
		{Currency: "EUR", Language: "en", Theme: "blue"},
	}
	for i, s := range bads {
		if err := s.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestSettingsMerge(t *testing.T) {
	s := DefaultSettings()
	merged := s.Merge(SettingsPatch{Currency: "USD", Theme: ThemeDark})
	if merged.Currency != "USD" || merged.Theme != ThemeDark || merged.Language != "en" {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
	if same := s.Merge(SettingsPatch{}); same != s {
		t.Fatalf("empty patch must be a no-op, got %+v", same)
	}
}
