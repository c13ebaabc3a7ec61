package store

import (
	"context"
	"errors"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/log"
)

// UpdateSettings applies a settings patch as three independent sub-protocols,
// evaluated in fixed order for each field that is present and changed:
//
//   - currency: optimistic local apply, push to the backend, then a full
//     refresh, because amounts may be re-denominated server-side;
//   - language: optimistic local apply, push, no reload (display only);
//   - theme: optimistic local apply, push, no reload.
//
// A failure in one sub-protocol does not block the others. Optimistic values
// are not rolled back on a failed push, so local and backend state can stay
// inconsistent until the next successful update; the failure is recorded as
// a user-visible error and joined into the returned error.
func (s *Store) UpdateSettings(ctx context.Context, patch core.SettingsPatch) error {
	s.mu.Lock()
	current := s.settings
	s.mu.Unlock()

	var errs []error

	if patch.Currency != "" && patch.Currency != current.Currency {
		if err := s.updateCurrency(ctx, patch.Currency); err != nil {
			errs = append(errs, err)
		}
	}

	if patch.Language != "" && patch.Language != current.Language {
		if err := s.updateField(ctx, "language", core.SettingsPatch{Language: patch.Language}); err != nil {
			errs = append(errs, err)
		}
	}

	if patch.Theme != "" && patch.Theme != current.Theme {
		if err := s.updateField(ctx, "theme", core.SettingsPatch{Theme: patch.Theme}); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// updateCurrency applies the new currency optimistically, pushes it, and on a
// successful push re-runs the full refresh to pick up converted amounts.
func (s *Store) updateCurrency(ctx context.Context, currency string) error {
	s.mu.Lock()
	s.settings.Currency = currency
	s.mu.Unlock()
	s.applySettings(ctx)
	s.dash.Clear()

	if _, err := s.backend.UpdateSettings(ctx, core.SettingsPatch{Currency: currency}); err != nil {
		s.setError("Currency conversion failed. Data may be inconsistent.")
		s.logger.Error("Currency update failed",
			log.FieldOperation, log.OpUpdate,
			log.FieldCurrency, currency,
			log.FieldError, err)
		return err
	}

	s.logger.Info("Currency changed, reloading converted amounts", log.FieldCurrency, currency)
	s.publish(ctx, events.NewSettingsEvent("currency"))
	return s.RefreshAll(ctx)
}

// updateField handles the display-only settings: optimistic apply, push,
// no data reload.
func (s *Store) updateField(ctx context.Context, field string, patch core.SettingsPatch) error {
	s.mu.Lock()
	s.settings = s.settings.Merge(patch)
	s.mu.Unlock()
	s.applySettings(ctx)

	if _, err := s.backend.UpdateSettings(ctx, patch); err != nil {
		s.setError("Failed to update settings. Please try again.")
		s.logger.Error("Settings update failed",
			log.FieldOperation, log.OpUpdate,
			"field", field,
			log.FieldError, err)
		return err
	}

	s.logger.Info("Settings updated", "field", field)
	s.publish(ctx, events.NewSettingsEvent(field))
	return nil
}
