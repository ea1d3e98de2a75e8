package http

import (
	"io"
	"net/http"
)

// getServerVersion answers GET /api/version with the build version as plain
// text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, serverVersion)
}
