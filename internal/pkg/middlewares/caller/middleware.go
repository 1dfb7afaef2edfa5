package caller

import (
	"net/http"
	"strings"

	"orders/internal/entities"
)

const (
	bearerPrefix = "Bearer "
	localeHeader = "Accept-Language"
)

// Middleware кладёт в контекст токен вызывающего и язык ответа.
// Токен не проверяется здесь, это делает сервис прав.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := entities.Caller{
			Token:  bearerToken(r.Header.Get("Authorization")),
			Locale: primaryLocale(r.Header.Get(localeHeader)),
		}
		next.ServeHTTP(w, r.WithContext(entities.WithCaller(r.Context(), c)))
	})
}

func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header)
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// primaryLocale берёт первый язык из Accept-Language без q-веса.
func primaryLocale(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	return strings.TrimSpace(tag)
}
