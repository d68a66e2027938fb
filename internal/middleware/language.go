package middleware

import (
	"net/http"

	"github.com/eatwithmaddie/menu-backend/internal/i18n"
)

// LanguageQueryParam overrides the stored preference for one request
const LanguageQueryParam = "lang"

const languageCookieMaxAge = 365 * 24 * 60 * 60

// Language resolves the visitor's language from the lang query parameter,
// then the language cookie, then Accept-Language, and stores it in the
// request context. An explicit lang parameter is remembered in the cookie.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang, explicit := i18n.Normalize(r.URL.Query().Get(LanguageQueryParam))

		if !explicit {
			var ok bool
			if c, err := r.Cookie(i18n.CookieName); err == nil {
				lang, ok = i18n.Normalize(c.Value)
			}
			if !ok {
				lang, ok = i18n.FromAcceptLanguage(r.Header.Get("Accept-Language"))
			}
			if !ok {
				lang = i18n.DefaultLanguage
			}
		} else {
			http.SetCookie(w, &http.Cookie{
				Name:     i18n.CookieName,
				Value:    string(lang),
				Path:     "/",
				MaxAge:   languageCookieMaxAge,
				SameSite: http.SameSiteLaxMode,
			})
		}

		w.Header().Set("Content-Language", string(lang))
		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")

		next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), lang)))
	})
}
