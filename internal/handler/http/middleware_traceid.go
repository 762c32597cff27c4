package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace ID, echoes it in the response
// headers, and attaches a child logger carrying the ID to the request
// context. Incoming trace IDs from trusted callers are reused.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceIDHeader, traceID)

		childLogger := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := childLogger.WithContext(r.Context())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
