package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/perf-dashboard/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it wraps the
// sentinel of the status with the server message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, message)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// responseMessage prefers the {"message": ...} field of the body and falls
// back to the raw body, then to the status text.
func responseMessage(resp *resty.Response) string {
	var body models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
