// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/utils"
)

// notFound answers unknown paths and unsupported methods alike with a JSON
// 404, so a wrong method does not reveal that the path exists.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
