package service

import (
	"context"

	"github.com/MKhiriev/perf-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and issues and checks session tokens.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService manages admin and analyst accounts and the caller's own
// profile.
type AccountService interface {
	RegisterAdmin(ctx context.Context, reg models.AdminRegistration, logo *models.IncomingFile) (models.User, error)
	CreateAnalyst(ctx context.Context, req models.AnalystCreation) (models.User, error)
	ListAnalysts(ctx context.Context) ([]models.User, error)
	DeleteAnalyst(ctx context.Context, analystID int64) error

	GetSelf(ctx context.Context, userID int64) (models.User, error)
	UpdateSelf(ctx context.Context, userID int64, update models.ProfileUpdate, logo *models.IncomingFile) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.PasswordChange) error
}

// AccountServiceWrapper decorates an AccountService, for example with input
// validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// FileIntakeService validates incoming files against an upload policy,
// writes them to disk and registers them.
type FileIntakeService interface {
	// Accept stores all files or none. uploaderID may be nil.
	Accept(ctx context.Context, policy models.UploadPolicy, uploaderID *int64, files ...models.IncomingFile) ([]models.StoredFile, error)
	// Discard removes previously accepted files from disk and registry.
	// Failures are logged, not returned.
	Discard(ctx context.Context, files ...models.StoredFile)
}

// FileRegistryService lists and deletes registered files.
type FileRegistryService interface {
	List(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error)
	Delete(ctx context.Context, fileID int64) error
}

// DatasetService turns a stored CSV export into chart-ready statistics.
type DatasetService interface {
	Summarize(ctx context.Context, fileID int64) (models.DatasetSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
