// Package locale maps currency/language pairs to display locales and formats
// amounts and dates for rendering. Everything here is a pure lookup; the same
// inputs always produce the same output.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyLocales pairs a currency with the regional locale used to format it
// in each supported language. EUR formatted for an English speaker uses Irish
// conventions, TND keeps Tunisian conventions regardless of language, etc.
var currencyLocales = map[string]map[string]string{
	"EUR": {"en": "en-IE", "fr": "fr-FR", "ar": "ar-FR"},
	"USD": {"en": "en-US", "fr": "fr-CA", "ar": "ar-US"},
	"TND": {"en": "en-TN", "fr": "fr-TN", "ar": "ar-TN"},
	"GBP": {"en": "en-GB", "fr": "fr-GB", "ar": "ar-GB"},
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"TND": "د.ت",
	"GBP": "£",
}

// dateLocales is independent from the currency table: dates follow the
// language alone.
var dateLocales = map[string]string{
	"en": "en-US",
	"ar": "ar-SA",
	"fr": "fr-FR",
}

var printerTags = map[string]language.Tag{
	"en": language.English,
	"fr": language.French,
	"ar": language.Arabic,
}

// ResolveLocale returns the BCP 47 locale for a currency/language pair.
// Unknown pairs synthesize "<language>-<first two letters of the currency>".
func ResolveLocale(currency, lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = "en"
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	if byLang, ok := currencyLocales[currency]; ok {
		if loc, ok := byLang[lang]; ok {
			return loc
		}
	}
	region := currency
	if len(region) > 2 {
		region = region[:2]
	}
	return lang + "-" + region
}

// FormatCurrency renders amount as the given currency with zero fractional
// digits. A missing amount renders as 0. Currencies without a known symbol
// fall back to "<CODE> <amount>" instead of failing.
func FormatCurrency(amount float64, currency, lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		return currency + " " + strconv.FormatFloat(amount, 'f', -1, 64)
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}
	// Half away from zero to whole units.
	units := int64(amount + 0.5)

	tag, ok := printerTags[lang]
	if !ok {
		tag = language.English
	}
	grouped := message.NewPrinter(tag).Sprintf("%d", units)

	var out string
	switch lang {
	case "fr", "ar":
		// Symbol trails the amount in French and Arabic conventions.
		out = grouped + " " + symbol
	default:
		out = symbol + grouped
	}
	if negative {
		out = "-" + out
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var frMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

var arMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatDate renders an ISO date string as a short human date in the
// language's date locale ("Jan 5, 2024" for en-US). Empty input yields the
// empty string; input that does not parse is returned verbatim.
func FormatDate(iso, lang string) string {
	if iso == "" {
		return ""
	}
	var t time.Time
	var err error
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, iso); err == nil {
			break
		}
	}
	if err != nil {
		return iso
	}

	loc, ok := dateLocales[strings.ToLower(lang)]
	if !ok {
		loc = "en-US"
	}
	switch loc {
	case "fr-FR":
		return fmt.Sprintf("%d %s %d", t.Day(), frMonths[t.Month()-1], t.Year())
	case "ar-SA":
		return fmt.Sprintf("%d %s %d", t.Day(), arMonths[t.Month()-1], t.Year())
	default:
		return t.Format("Jan 2, 2006")
	}
}
