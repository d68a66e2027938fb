// Package i18n resolves the visitor's language and holds the English and
// French strings used in order messages.
package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// DefaultLanguage is used when nothing better is known
const DefaultLanguage = English

// CookieName is the cookie the front-end stores the chosen language in
const CookieName = "eat_with_maddie_language"

// Normalize maps any "fr*" or "en*" tag to a supported language
func Normalize(value string) (Language, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "":
		return "", false
	case strings.HasPrefix(v, "fr"):
		return French, true
	case strings.HasPrefix(v, "en"):
		return English, true
	default:
		return "", false
	}
}

// FromAcceptLanguage picks the first supported language of an
// Accept-Language header, honouring quality weights.
func FromAcceptLanguage(header string) (Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if lang, ok := Normalize(base.String()); ok {
			return lang, true
		}
	}
	return "", false
}

// Resolve returns the first supported language among candidates, in order,
// falling back to DefaultLanguage.
func Resolve(candidates ...string) Language {
	for _, c := range candidates {
		if lang, ok := Normalize(c); ok {
			return lang
		}
	}
	return DefaultLanguage
}

type ctxKey struct{}

// WithLanguage stores lang in ctx
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext returns the language stored in ctx or DefaultLanguage
func FromContext(ctx context.Context) Language {
	if lang, ok := ctx.Value(ctxKey{}).(Language); ok {
		return lang
	}
	return DefaultLanguage
}
