package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// gzipWriter создаёт gzip.Writer только при первой записи тела:
// пустой ответ уходит без сжатия и без Content-Encoding.
type gzipWriter struct {
	http.ResponseWriter
	zw     *gzip.Writer
	status int
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	if w.zw == nil {
		status := w.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Del("Content-Length")
		w.Header().Set("Content-Encoding", "gzip")
		w.ResponseWriter.WriteHeader(status)
		w.zw = gzip.NewWriter(w.ResponseWriter)
	}
	return w.zw.Write(b)
}

// WriteHeader откладывает статус до первой записи или до close.
func (w *gzipWriter) WriteHeader(statusCode int) {
	if w.status == 0 && w.zw == nil {
		w.status = statusCode
	}
}

func (w *gzipWriter) close() error {
	if w.zw != nil {
		return w.zw.Close()
	}
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	return nil
}

type gzipReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func (c *gzipReader) Read(p []byte) (int, error) {
	return c.zr.Read(p)
}

func (c *gzipReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

// WithGzip сжимает ответ, если клиент принимает gzip, и распаковывает тело запроса с Content-Encoding: gzip.
func WithGzip(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			zr, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}
			r.Body = &gzipReader{r: r.Body, zr: zr}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(w, r)
			return
		}

		gw := &gzipWriter{ResponseWriter: w}
		defer gw.close()
		h.ServeHTTP(gw, r)
	})
}
