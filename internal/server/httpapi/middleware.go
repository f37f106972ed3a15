package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/farmconnect/internal/logging"
	"github.com/google/uuid"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// withRequestID tags every request with a fresh request ID and stores a
// child logger carrying it in the request context.
func (s *HTTPServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.logger.With("request_id", uuid.NewString(), "method", r.Method, "path", r.URL.Path)
		ctx := context.WithValue(r.Context(), loggerKey, log)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withRecovery converts a panic anywhere below into a generic 500. The
// detail is logged server-side and never reaches the client.
func (s *HTTPServer) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log(r).Error(r.Context(), "panic in handler", "panic", rec)
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgSomethingWrong})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// log returns the request-scoped logger, falling back to the server logger
// when middleware did not run (e.g. in isolated handler tests).
func (s *HTTPServer) log(r *http.Request) logging.Logger {
	if l, ok := r.Context().Value(loggerKey).(logging.Logger); ok {
		return l
	}
	return s.logger
}
