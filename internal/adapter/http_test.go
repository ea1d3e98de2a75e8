// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpDashboardAdapter {
	t.Helper()
	a, err := NewHTTPDashboardAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpDashboardAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── NewHTTPDashboardAdapter ─────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "trailing slash", raw: " https://dash.example.com/ ", want: "https://dash.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPDashboardAdapter_TokenFromConfig(t *testing.T) {
	a, err := NewHTTPDashboardAdapter(config.ClientAdapter{HTTPAddress: "localhost:5000", Token: " abc "}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "abc", a.Token())
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Identifier)

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Token: "signed",
			User:  models.PublicUser{UserID: 2, Username: "alice", Role: models.RoleAnalyst},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Identifier: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAnalyst, got.User.Role)
	assert.Equal(t, "signed", a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
		wantMsg string
	}{
		{name: "invalid credentials", status: http.StatusBadRequest, body: models.MessageResponse{Message: "Invalid credentials"}, wantErr: ErrBadRequest, wantMsg: "Invalid credentials"},
		{name: "unknown user", status: http.StatusNotFound, body: models.MessageResponse{Message: "User not found"}, wantErr: ErrNotFound, wantMsg: "User not found"},
		{name: "database down", status: http.StatusServiceUnavailable, body: models.MessageResponse{Message: "Service temporarily unavailable"}, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.LoginRequest{Identifier: "x", Password: "y"})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, a.Token())
		})
	}
}

// ── authenticated calls ─────────────────────────────────────────────────────

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tkn" {
			writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "No token, authorization denied"})
			return
		}
		writeJSON(w, http.StatusOK, models.PublicUser{UserID: 1, Username: "root", Role: models.RoleAdmin})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken("tkn")
	got, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "root", got.Username)
}

func TestVersion_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "1.4.0")
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

// ── datasets ────────────────────────────────────────────────────────────────

func TestUploadDatasets_SingleFile(t *testing.T) {
	path := writeTempFile(t, "july.csv", "Date,Views\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/upload-csv", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		headers := r.MultipartForm.File["csvFile"]
		require.Len(t, headers, 1)
		assert.Equal(t, "july.csv", headers[0].Filename)
		assert.Equal(t, "text/csv", headers[0].Header.Get("Content-Type"))

		writeJSON(w, http.StatusCreated, models.UploadResponse{
			Message: "File uploaded successfully",
			File:    models.StoredFile{FileID: 9, OriginalName: "july.csv", MIMEType: "text/csv", Size: 11},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tkn")
	got, err := a.UploadDatasets(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].FileID)
}

func TestUploadDatasets_Folder(t *testing.T) {
	first := writeTempFile(t, "a.csv", "a")
	second := writeTempFile(t, "b.csv", "b")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/upload-csv-folder", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Len(t, r.MultipartForm.File["csvFiles"], 2)

		writeJSON(w, http.StatusCreated, models.BatchUploadResponse{
			Files:  []models.StoredFile{{FileID: 1}, {FileID: 2}},
			Length: 2,
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UploadDatasets(context.Background(), first, second)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUploadDatasets_NoPathsOrMissingFile(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.UploadDatasets(context.Background())
	require.ErrorIs(t, err, ErrNoPaths)

	_, err = a.UploadDatasets(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListDatasets_MIMETypeQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"image/png", "text/csv"}, r.URL.Query()["mimetype"])
		writeJSON(w, http.StatusOK, []models.StoredFile{{FileID: 3}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListDatasets(context.Background(), "image/png", "text/csv")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDeleteDataset_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/auth/csv/42", r.URL.Path)
		writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "File not found"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteDataset(context.Background(), 42)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "File not found")
}

func TestSummarizeDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/csv/3/summary", r.URL.Path)
		writeJSON(w, http.StatusOK, models.DatasetSummary{FileID: 3, Totals: models.DailyStats{Views: 10}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SummarizeDataset(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Totals.Views)
}

// ── analysts ────────────────────────────────────────────────────────────────

func TestCreateAnalyst_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, models.MessageResponse{Message: "Access denied"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateAnalyst(context.Background(), models.AnalystCreation{Username: "a", Password: "pw1234"})

	require.ErrorIs(t, err, ErrForbidden)
}

func TestAnalystsLifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/create-analyst":
			writeJSON(w, http.StatusCreated, models.ProfileResponse{User: models.PublicUser{UserID: 5, Username: "alice", Role: models.RoleAnalyst}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/auth/analysts":
			writeJSON(w, http.StatusOK, []models.PublicUser{{UserID: 5, Username: "alice", Role: models.RoleAnalyst}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/auth/analysts/5":
			writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Analyst deleted successfully"})
		default:
			writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "Not found"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	created, err := a.CreateAnalyst(ctx, models.AnalystCreation{Username: "alice", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.UserID)

	analysts, err := a.ListAnalysts(ctx)
	require.NoError(t, err)
	assert.Len(t, analysts, 1)

	require.NoError(t, a.DeleteAnalyst(ctx, 5))
	require.ErrorIs(t, a.DeleteAnalyst(ctx, 6), ErrNotFound)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_FallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short and stout")
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteDataset(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, "http 418: short and stout", err.Error())
}
