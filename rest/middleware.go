package rest

import (
	"bytes"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/rs/xid"
)

func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = xid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		log := logger.Logger(ctx).With().
			Str("method", r.Method).Str("req_id", reqID).
			Str("url", r.URL.String()).Logger()

		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Msgf("Recovered from panic, stack trace: %s", string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		r = r.WithContext(log.WithContext(ctx))
		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log = log.With().Int64("cost_msec", time.Since(start).Milliseconds()).Logger()
		switch {
		case rw.statusCode >= 500:
			log.Error().Int("status_code", rw.statusCode).Str("response_body", rw.body.String()).Msg("Request completed with server error")
		case rw.statusCode >= 400:
			log.Warn().Int("status_code", rw.statusCode).Str("response_body", rw.body.String()).Msg("Request completed with client error")
		default:
			log.Info().Int("status_code", rw.statusCode).Msg("Request completed successfully")
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write keeps a copy of error bodies only
func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode >= 400 {
		rw.body.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}
