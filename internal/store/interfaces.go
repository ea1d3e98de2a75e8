package store

import (
	"context"
	"io"

	"github.com/MKhiriev/perf-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists dashboard accounts. Uniqueness of username and
// email is enforced by the database; violations surface as
// [ErrUsernameAlreadyExists] and [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	DeleteUserWithRole(ctx context.Context, userID int64, role models.Role) error
}

// FileRepository persists the registry of uploaded files.
type FileRepository interface {
	// CreateFiles inserts all records in one transaction and returns them
	// with their assigned ids, in input order.
	CreateFiles(ctx context.Context, files ...models.StoredFile) ([]models.StoredFile, error)
	FindFileByID(ctx context.Context, fileID int64) (models.StoredFile, error)
	// ListFiles returns records newest first.
	ListFiles(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error)
	DeleteFile(ctx context.Context, fileID int64) error
}

// FileStorage keeps file bytes in a single flat directory.
type FileStorage interface {
	// Save streams content into a new file named by the upload clock plus
	// ext. It never overwrites an existing file. If more than maxSize bytes
	// arrive, the partial file is removed and [ErrFileTooLarge] is returned.
	Save(ctx context.Context, ext string, content io.Reader, maxSize int64) (filename string, size int64, err error)
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	// Remove deletes filename. A missing file yields an error matching
	// fs.ErrNotExist.
	Remove(ctx context.Context, filename string) error
	// Dir is the directory files are stored in.
	Dir() string
}
