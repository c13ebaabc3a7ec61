// Package i18n provides static UI string lookup for the supported languages.
package i18n

import "golang.org/x/text/language"

const fallbackLanguage = "en"

var supported = []language.Tag{
	language.English, // first entry is the matcher fallback
	language.Arabic,
	language.French,
}

var matcher = language.NewMatcher(supported)

// T returns the translation of key for the given language code.
// Unknown languages fall back to English, unknown keys are returned verbatim.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[fallbackLanguage][key]; ok {
		return s
	}
	return key
}

// Resolve maps an arbitrary language tag to a supported language code.
// Regional variants collapse to their base language ("en-GB" -> "en");
// anything unsupported resolves to English.
func Resolve(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return fallbackLanguage
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return fallbackLanguage
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// Direction reports the text direction for a language code.
func Direction(lang string) string {
	if lang == "ar" {
		return "rtl"
	}
	return "ltr"
}
