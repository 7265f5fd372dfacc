package middleware

import (
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// allowedHosts — адреса, под которыми страница открывается локально:
// сам адрес сервера и loopback-имена с тем же портом.
func allowedHosts(baseURL string) map[string]struct{} {
	hosts := map[string]struct{}{strings.ToLower(baseURL): {}}
	if _, port, err := net.SplitHostPort(baseURL); err == nil && port != "" {
		for _, h := range []string{"localhost", "127.0.0.1", "[::1]"} {
			hosts[h+":"+port] = struct{}{}
		}
	}
	return hosts
}

// WithLocalOnly отклоняет запросы с чужим Host (DNS rebinding) и с чужим Origin
// (запросы со сторонних страниц в браузере).
func WithLocalOnly(baseURL string) func(http.Handler) http.Handler {
	hosts := allowedHosts(baseURL)
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := hosts[strings.ToLower(r.Host)]; !ok {
				sugar.Warnw("rejected foreign host", "host", r.Host, "uri", r.RequestURI)
				http.Error(w, "forbidden host", http.StatusForbidden)
				return
			}
			if origin := r.Header.Get("Origin"); origin != "" && !localOrigin(origin, hosts) {
				sugar.Warnw("rejected foreign origin", "origin", origin, "uri", r.RequestURI)
				http.Error(w, "forbidden origin", http.StatusForbidden)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

func localOrigin(origin string, hosts map[string]struct{}) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme != "http" {
		return false
	}
	_, ok := hosts[strings.ToLower(u.Host)]
	return ok
}

// WithJSONContentType требует Content-Type: application/json у POST и DELETE,
// даже без тела: так кросс-сайтовая «простая» форма не пройдёт.
func WithJSONContentType(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodDelete {
			mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mt != "application/json" {
				http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		}
		h.ServeHTTP(w, r)
	})
}
