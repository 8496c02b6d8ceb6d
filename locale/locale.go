// Package locale holds the storefront translations and language negotiation.
package locale

import "strings"

// Language is a supported storefront language code.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
	Arabic  Language = "ar"
)

// DefaultLanguage is used when no supported language can be negotiated.
const DefaultLanguage = English

// Supported lists all languages the storefront serves.
var Supported = []Language{English, French, Arabic}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	for _, lang := range Supported {
		if string(lang) == code {
			return true
		}
	}
	return false
}

// Parse normalizes a language code, falling back to the default when the
// code is unknown.
func Parse(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		code = code[:idx]
	}
	if IsSupported(code) {
		return Language(code)
	}
	return DefaultLanguage
}

// Negotiate picks a language from an Accept-Language header value. The first
// supported language wins; quality values are ignored since the supported set
// is small.
func Negotiate(acceptLanguage string) Language {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := part
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		tag = strings.ToLower(strings.TrimSpace(tag))
		if idx := strings.IndexAny(tag, "-_"); idx > 0 {
			tag = tag[:idx]
		}
		if IsSupported(tag) {
			return Language(tag)
		}
	}
	return DefaultLanguage
}

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return l == Arabic
}

// T resolves a translation key for the language. Missing keys fall back to
// English, then to the key itself.
func T(lang Language, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if value, ok := dict[key]; ok {
			return value
		}
	}
	if value, ok := dictionaries[English][key]; ok {
		return value
	}
	return key
}

// Dictionary returns the full key set for a language with English fallbacks
// applied, suitable for serving to clients in one response.
func Dictionary(lang Language) map[string]string {
	base := dictionaries[English]
	out := make(map[string]string, len(base))
	for key, value := range base {
		out[key] = value
	}
	if lang == English {
		return out
	}
	if dict, ok := dictionaries[lang]; ok {
		for key, value := range dict {
			out[key] = value
		}
	}
	return out
}
