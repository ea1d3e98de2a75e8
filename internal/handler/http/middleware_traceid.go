package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/perf-dashboard/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a child logger carrying "trace_id" to the request
// context. The id is taken from X-Trace-ID when the caller sent one and is
// echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
