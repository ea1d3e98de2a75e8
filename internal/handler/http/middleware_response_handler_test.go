package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{name: "single", statuses: []int{http.StatusCreated}, wantStatus: http.StatusCreated},
		{name: "double call", statuses: []int{http.StatusAccepted, http.StatusBadRequest}, wantStatus: http.StatusAccepted},
		{name: "triple call", statuses: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			for _, status := range tt.statuses {
				w.WriteHeader(status)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("hello "))
	w.Write([]byte("world"))

	assert.Equal(t, http.StatusOK, w.status, "write implies 200")
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
	assert.Same(t, http.ResponseWriter(rec), w.Unwrap())
}
