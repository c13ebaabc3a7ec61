package cli

import (
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/i18n"
	"fintrack/internal/log"
)

// TerminalAppearance holds the process-wide presentation switches: visual
// mode, text direction and active language tag. Views read it instead of
// reaching into the settings themselves.
type TerminalAppearance struct {
	logger *log.Logger

	mu        sync.RWMutex
	dark      bool
	direction string
	language  string
}

func NewTerminalAppearance(logger *log.Logger) *TerminalAppearance {
	return &TerminalAppearance{
		logger:    logger,
		direction: "ltr",
		language:  "en",
	}
}

// Apply implements store.Appearance.
func (a *TerminalAppearance) Apply(set core.Settings) {
	a.mu.Lock()
	a.dark = set.Theme == core.ThemeDark
	a.direction = i18n.Direction(set.Language)
	a.language = set.Language
	a.mu.Unlock()

	a.logger.Info("Applied presentation settings",
		log.FieldTheme, set.Theme,
		log.FieldLanguage, set.Language,
		"direction", a.direction)
}

func (a *TerminalAppearance) Dark() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dark
}

func (a *TerminalAppearance) Direction() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.direction
}

func (a *TerminalAppearance) Language() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.language
}
