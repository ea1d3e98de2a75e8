package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/service"
	"github.com/MKhiriev/perf-dashboard/models"
)

func storedCSV(id int64, name string) models.StoredFile {
	return models.StoredFile{
		FileID:       id,
		Filename:     fmt.Sprintf("17000000000%d-%s", id, name),
		Path:         "uploads/" + name,
		OriginalName: name,
		MIMEType:     "text/csv",
		Size:         12,
	}
}

// ── upload-csv ──────────────────────────────

func TestUploadDataset(t *testing.T) {
	h, d := newTestHandler(t)
	d.intake.EXPECT().
		Accept(gomock.Any(), models.DatasetPolicy(d.uploadsDir), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.UploadPolicy, uploader *int64, files ...models.IncomingFile) ([]models.StoredFile, error) {
			require.NotNil(t, uploader)
			assert.Equal(t, int64(2), *uploader)
			require.Len(t, files, 1)
			assert.Equal(t, "csvFile", files[0].FieldName)
			assert.Equal(t, "july.csv", files[0].OriginalName)
			return []models.StoredFile{storedCSV(5, "july.csv")}, nil
		})

	req := multipartRequest(t, http.MethodPost, "/api/auth/upload-csv", nil,
		formFile{field: "csvFile", filename: "july.csv", contentType: "text/csv", content: "Date,Views\n"})
	rec := serve(h, withToken(d, req, 2, models.RoleAnalyst))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgFileUploaded, resp.Message)
	assert.Equal(t, int64(5), resp.File.FileID)
}

func TestUploadDataset_Failures(t *testing.T) {
	tests := []struct {
		name        string
		files       []formFile
		expect      func(d testDeps)
		wantMessage string
	}{
		{
			name: "no file in form",
			expect: func(d testDeps) {
				d.intake.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrNoFilesUploaded)
			},
			wantMessage: app.MsgNoFilesUploaded,
		},
		{
			name:        "more than one file",
			files:       []formFile{{field: "csvFile", filename: "a.csv", contentType: "text/csv"}, {field: "csvFile", filename: "b.csv", contentType: "text/csv"}},
			expect:      func(d testDeps) {},
			wantMessage: app.MsgTooManyFiles,
		},
		{
			name:  "rejected type",
			files: []formFile{{field: "csvFile", filename: "notes.txt", contentType: "text/plain", content: "x"}},
			expect: func(d testDeps) {
				d.intake.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidFileType)
			},
			wantMessage: app.MsgInvalidFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			tt.expect(d)

			req := multipartRequest(t, http.MethodPost, "/api/auth/upload-csv", nil, tt.files...)
			rec := serve(h, withToken(d, req, 2, models.RoleAnalyst))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

// ── upload-csv-folder ───────────────────────

func TestUploadDatasetFolder(t *testing.T) {
	h, d := newTestHandler(t)
	d.intake.EXPECT().
		Accept(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.StoredFile{storedCSV(1, "a.csv"), storedCSV(2, "b.csv"), storedCSV(3, "c.csv")}, nil)

	req := multipartRequest(t, http.MethodPost, "/api/auth/upload-csv-folder", nil,
		formFile{field: "csvFiles", filename: "a.csv", contentType: "text/csv", content: "a"},
		formFile{field: "csvFiles", filename: "b.csv", contentType: "text/csv", content: "b"},
		formFile{field: "csvFiles", filename: "c.csv", contentType: "text/csv", content: "c"},
	)
	rec := serve(h, withToken(d, req, 1, models.RoleAdmin))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.BatchUploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgFilesUploaded, resp.Message)
	assert.Equal(t, 3, resp.Length)
	assert.Len(t, resp.Files, 3)
}

// ── csv-files ───────────────────────────────

func TestListDatasets_Filters(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFilter models.FileFilter
	}{
		{name: "defaults to dataset types", target: "/api/auth/csv-files", wantFilter: models.FileFilter{MIMETypes: []string{"text/csv", "application/vnd.ms-excel"}}},
		{name: "comma separated", target: "/api/auth/csv-files?mimetype=image/png,Image/JPEG", wantFilter: models.FileFilter{MIMETypes: []string{"image/png", "image/jpeg"}}},
		{name: "repeated", target: "/api/auth/csv-files?mimetype=text/csv&mimetype=image/gif", wantFilter: models.FileFilter{MIMETypes: []string{"text/csv", "image/gif"}}},
		{name: "empty value lists everything", target: "/api/auth/csv-files?mimetype=", wantFilter: models.FileFilter{}},
		{name: "unusable values keep dataset types", target: "/api/auth/csv-files?mimetype=a%20b", wantFilter: models.FileFilter{MIMETypes: []string{"text/csv", "application/vnd.ms-excel"}}},
		{name: "unusable and valid values", target: "/api/auth/csv-files?mimetype=a%20b,image/png", wantFilter: models.FileFilter{MIMETypes: []string{"image/png"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			d.registry.EXPECT().List(gomock.Any(), tt.wantFilter).Return([]models.StoredFile{storedCSV(1, "a.csv")}, nil)

			rec := serve(h, withToken(d, httptest.NewRequest(http.MethodGet, tt.target, nil), 2, models.RoleAnalyst))

			require.Equal(t, http.StatusOK, rec.Code)
			var files []models.StoredFile
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
			assert.Len(t, files, 1)
		})
	}
}

// ── csv/{id} ────────────────────────────────

func TestDeleteDataset(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "deleted", wantStatus: http.StatusOK, wantMessage: app.MsgFileDeleted},
		{name: "unknown id", serviceErr: service.ErrFileNotFound, wantStatus: http.StatusNotFound, wantMessage: app.MsgFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			d.registry.EXPECT().Delete(gomock.Any(), int64(7)).Return(tt.serviceErr)

			rec := serve(h, withToken(d, httptest.NewRequest(http.MethodDelete, "/api/auth/csv/7", nil), 2, models.RoleAnalyst))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestSummarizeDataset(t *testing.T) {
	h, d := newTestHandler(t)
	d.datasets.EXPECT().Summarize(gomock.Any(), int64(3)).Return(models.DatasetSummary{
		FileID:       3,
		OriginalName: "july.csv",
		Totals:       models.DailyStats{Views: 100},
		CurrentYear:  2024,
	}, nil)

	rec := serve(h, withToken(d, httptest.NewRequest(http.MethodGet, "/api/auth/csv/3/summary", nil), 2, models.RoleAnalyst))

	require.Equal(t, http.StatusOK, rec.Code)
	var summary models.DatasetSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(100), summary.Totals.Views)
	assert.Equal(t, 2024, summary.CurrentYear)
}

func TestSummarizeDataset_NotCSV(t *testing.T) {
	h, d := newTestHandler(t)
	d.datasets.EXPECT().Summarize(gomock.Any(), int64(4)).Return(models.DatasetSummary{}, service.ErrNotCSV)

	rec := serve(h, withToken(d, httptest.NewRequest(http.MethodGet, "/api/auth/csv/4/summary", nil), 2, models.RoleAnalyst))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNotCSV, decodeMessage(t, rec))
}
