package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/service"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrInvalidForm:                      http.StatusBadRequest,
	ErrInvalidID:                        http.StatusBadRequest,
	ErrTooManyFiles:                     http.StatusBadRequest,
	ErrNoCaller:                         http.StatusUnauthorized,
	service.ErrValidation:               http.StatusBadRequest,
	service.ErrInvalidCredentials:       http.StatusBadRequest,
	service.ErrUserNotFound:             http.StatusNotFound,
	service.ErrUsernameExists:           http.StatusBadRequest,
	service.ErrEmailExists:              http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:      http.StatusBadRequest,
	service.ErrCurrentPasswordIncorrect: http.StatusBadRequest,
	service.ErrAnalystNotFound:          http.StatusNotFound,
	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrNoFilesUploaded:          http.StatusBadRequest,
	service.ErrInvalidFileType:          http.StatusBadRequest,
	service.ErrFileTooLarge:             http.StatusBadRequest,
	service.ErrFileNotFound:             http.StatusNotFound,
	service.ErrNotCSV:                   http.StatusBadRequest,

	store.ErrTransient: http.StatusServiceUnavailable,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:                      app.MsgInvalidJSON,
	ErrInvalidForm:                      app.MsgInvalidForm,
	ErrInvalidID:                        app.MsgInvalidID,
	ErrTooManyFiles:                     app.MsgTooManyFiles,
	ErrNoCaller:                         app.MsgNoTokenProvided,
	service.ErrInvalidCredentials:       app.MsgInvalidCredentials,
	service.ErrUserNotFound:             app.MsgUserNotFound,
	service.ErrUsernameExists:           app.MsgUsernameExists,
	service.ErrEmailExists:              app.MsgEmailExists,
	service.ErrPasswordsDoNotMatch:      app.MsgPasswordsDoNotMatch,
	service.ErrCurrentPasswordIncorrect: app.MsgCurrentPasswordIncorrect,
	service.ErrAnalystNotFound:          app.MsgAnalystNotFound,
	service.ErrTokenIsExpired:           app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid:  app.MsgTokenIsInvalid,
	service.ErrNoFilesUploaded:          app.MsgNoFilesUploaded,
	service.ErrInvalidFileType:          app.MsgInvalidFileType,
	service.ErrFileTooLarge:             app.MsgFileTooLarge,
	service.ErrFileNotFound:             app.MsgFileNotFound,
	service.ErrNotCSV:                   app.MsgNotCSV,

	store.ErrTransient: app.MsgServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Validation
// failures carry the rule that was violated; unknown errors get a generic
// message so driver details never reach the client.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrValidation) {
		return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and {message}.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err), status)
}
