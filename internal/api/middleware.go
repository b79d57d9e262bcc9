package api

import (
	"net/http"

	"github.com/gorilla/handlers"

	"github.com/eleven-am/tick/internal/logger"
)

// statusWriter records the status code written by a handler so the request
// log can include it.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// RequestLogging logs one line per handled request.
func RequestLogging(next http.Handler) http.Handler {
	log := logger.HTTP()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.Info("handled", "method", r.Method, "url", r.URL.String(), "status", sw.status)
	})
}

// CORS allows cross-origin requests from the single configured front-end
// origin.
func CORS(origin string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
}
