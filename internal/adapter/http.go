package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/models"
)

// Multipart fields of the dataset upload endpoints.
const (
	fieldDatasetFile   = "csvFile"
	fieldDatasetFolder = "csvFiles"
)

type httpDashboardAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDashboardAdapter constructs the resty implementation of
// [DashboardAdapter]. It normalises adapterCfg.HTTPAddress into a base URL
// and applies the request timeout. A token in the config is used for
// authenticated calls until Login replaces it.
func NewHTTPDashboardAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DashboardAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	a := &httpDashboardAdapter{client: client, logger: logger}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpDashboardAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpDashboardAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version GETs /api/version, which answers with plain text.
func (h *httpDashboardAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Login POSTs req to /api/auth/login and keeps the returned token.
func (h *httpDashboardAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if result.Token == "" {
		return models.LoginResponse{}, errors.New("login response carries no token")
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpDashboardAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/api/auth/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// UploadDatasets streams the files at paths as multipart parts. The part
// content type is derived from the file extension.
func (h *httpDashboardAdapter) UploadDatasets(ctx context.Context, paths ...string) ([]models.StoredFile, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	fields := make([]*resty.MultipartField, 0, len(paths))
	field, endpoint := fieldDatasetFile, "/api/auth/upload-csv"
	if len(paths) > 1 {
		field, endpoint = fieldDatasetFolder, "/api/auth/upload-csv-folder"
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		fields = append(fields, &resty.MultipartField{
			Param:       field,
			FileName:    filepath.Base(path),
			ContentType: contentTypeFor(path),
			Reader:      io.Reader(f),
		})
	}

	req := h.authedRequest(ctx).SetMultipartFields(fields...)

	if len(paths) == 1 {
		var result models.UploadResponse
		resp, err := req.SetResult(&result).Post(endpoint)
		if err != nil {
			return nil, fmt.Errorf("upload request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}
		return []models.StoredFile{result.File}, nil
	}

	var result models.BatchUploadResponse
	resp, err := req.SetResult(&result).Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("upload folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Str("func", "*httpDashboardAdapter.UploadDatasets").Int("length", result.Length).Msg("folder uploaded")
	return result.Files, nil
}

func (h *httpDashboardAdapter) ListDatasets(ctx context.Context, mimeTypes ...string) ([]models.StoredFile, error) {
	var files []models.StoredFile

	req := h.authedRequest(ctx).SetResult(&files)
	if len(mimeTypes) > 0 {
		req.SetQueryParamsFromValues(url.Values{"mimetype": mimeTypes})
	}

	resp, err := req.Get("/api/auth/csv-files")
	if err != nil {
		return nil, fmt.Errorf("list datasets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return files, nil
}

func (h *httpDashboardAdapter) DeleteDataset(ctx context.Context, fileID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(fileID, 10)).
		Delete("/api/auth/csv/{id}")
	if err != nil {
		return fmt.Errorf("delete dataset request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDashboardAdapter) SummarizeDataset(ctx context.Context, fileID int64) (models.DatasetSummary, error) {
	var summary models.DatasetSummary

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(fileID, 10)).
		SetResult(&summary).
		Get("/api/auth/csv/{id}/summary")
	if err != nil {
		return models.DatasetSummary{}, fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DatasetSummary{}, err
	}

	return summary, nil
}

func (h *httpDashboardAdapter) CreateAnalyst(ctx context.Context, req models.AnalystCreation) (models.PublicUser, error) {
	var result models.ProfileResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/create-analyst")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("create analyst request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return result.User, nil
}

func (h *httpDashboardAdapter) ListAnalysts(ctx context.Context) ([]models.PublicUser, error) {
	var analysts []models.PublicUser

	resp, err := h.authedRequest(ctx).SetResult(&analysts).Get("/api/auth/analysts")
	if err != nil {
		return nil, fmt.Errorf("list analysts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return analysts, nil
}

func (h *httpDashboardAdapter) DeleteAnalyst(ctx context.Context, analystID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(analystID, 10)).
		Delete("/api/auth/analysts/{id}")
	if err != nil {
		return fmt.Errorf("delete analyst request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDashboardAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func contentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		return "text/csv"
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
