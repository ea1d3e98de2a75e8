// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the dashctl client to talk
// to the dashboard server.
//
// [DashboardAdapter] hides the REST details from the command layer. The
// package ships one implementation over resty ([NewHTTPDashboardAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so callers can branch with [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/perf-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dashboard_adapter_mock.go -package=mock

// DashboardAdapter defines the calls the dashctl client makes against the
// dashboard API. Authenticated calls send the token set by SetToken or
// obtained by Login.
type DashboardAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the profile of the token owner.
	Me(ctx context.Context) (models.PublicUser, error)

	// UploadDatasets uploads the files at paths. A single path goes to the
	// single-file endpoint, several paths to the folder endpoint.
	UploadDatasets(ctx context.Context, paths ...string) ([]models.StoredFile, error)

	// ListDatasets lists stored files. Without mimeTypes the server default
	// (CSV datasets) applies.
	ListDatasets(ctx context.Context, mimeTypes ...string) ([]models.StoredFile, error)

	// DeleteDataset removes a stored file and its record.
	DeleteDataset(ctx context.Context, fileID int64) error

	// SummarizeDataset returns totals and year-over-year changes of a CSV
	// dataset.
	SummarizeDataset(ctx context.Context, fileID int64) (models.DatasetSummary, error)

	// CreateAnalyst creates an analyst account. Admin only.
	CreateAnalyst(ctx context.Context, req models.AnalystCreation) (models.PublicUser, error)

	// ListAnalysts lists analyst accounts. Admin only.
	ListAnalysts(ctx context.Context) ([]models.PublicUser, error)

	// DeleteAnalyst removes an analyst account. Admin only.
	DeleteAnalyst(ctx context.Context, analystID int64) error
}
