package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type languageContextKey struct{}

// LanguagesKey carries the caller's caption language preferences through the
// request context.
var LanguagesKey = languageContextKey{}

// Languages parses the Accept-Language header into ordered language tags
// used as the default caption-track preference. Requests without a usable
// header fall back to the configured defaults.
func Languages(defaults []language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tags := defaults
			if header := r.Header.Get("Accept-Language"); header != "" {
				if parsed, _, err := language.ParseAcceptLanguage(header); err == nil && len(parsed) > 0 {
					tags = parsed
				}
			}
			ctx := context.WithValue(r.Context(), LanguagesKey, tags)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LanguagesFromContext returns the caption language preferences stored by
// Languages, or nil when the middleware did not run.
func LanguagesFromContext(ctx context.Context) []language.Tag {
	if v, ok := ctx.Value(LanguagesKey).([]language.Tag); ok {
		return v
	}
	return nil
}

// ParseLanguageTags converts configured language codes into tags, dropping
// anything unparsable.
func ParseLanguageTags(codes []string) []language.Tag {
	var tags []language.Tag
	for _, code := range codes {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
