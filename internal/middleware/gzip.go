package middleware

import (
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// gzipWriter включает сжатие только при первой непустой записи тела.
type gzipWriter struct {
	http.ResponseWriter
	zw         *gzip.Writer
	status     int
	headerSent bool
	plain      bool
}

// bodyless — статусы, у которых не бывает тела ответа
func bodyless(code int) bool {
	return code < http.StatusOK || code == http.StatusNoContent || code == http.StatusNotModified
}

func (w *gzipWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
	if bodyless(statusCode) {
		w.plain = true
		w.sendHeader()
	}
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	if w.plain {
		return w.ResponseWriter.Write(b)
	}
	if len(b) == 0 {
		return 0, nil
	}
	if w.zw == nil {
		h := w.ResponseWriter.Header()
		h.Set("Content-Encoding", "gzip")
		// длина несжатого тела здесь неверна
		h.Del("Content-Length")
		w.sendHeader()
		w.zw = gzip.NewWriter(w.ResponseWriter)
	}
	return w.zw.Write(b)
}

func (w *gzipWriter) sendHeader() {
	if w.headerSent {
		return
	}
	w.headerSent = true
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)
}

func (w *gzipWriter) close() error {
	if w.zw != nil {
		return w.zw.Close()
	}
	// статус без тела: отправляем как есть, без Content-Encoding
	if w.status != 0 {
		w.sendHeader()
	}
	return nil
}

// WithGzip сжимает ответ, если клиент принимает gzip.
func WithGzip(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(w, r)
			return
		}
		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipWriter{ResponseWriter: w}
		defer func() { _ = gw.close() }()
		h.ServeHTTP(gw, r)
	})
}
