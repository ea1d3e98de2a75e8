package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/perf-dashboard/models"
)

const (
	usersTable = "users"
	filesTable = "files"
)

var userColumns = []string{
	"user_id",
	"username",
	"email",
	"password_hash",
	"role",
	"logo",
	"created_at",
	"updated_at",
}

var fileColumns = []string{
	"file_id",
	"filename",
	"path",
	"original_name",
	"mime_type",
	"size",
	"uploaded_by",
	"uploaded_at",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "password_hash", "role", "logo", "created_at", "updated_at").
		Values(user.Username, user.Email, user.PasswordHash, string(user.Role), user.Logo, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildListUsersByRoleQuery(b sq.StatementBuilderType, role models.Role) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"role": string(role)}).
		OrderBy("username ASC").
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update and always
// bumps updated_at.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate, now time.Time) (string, []any, error) {
	query := b.Update(usersTable).Set("updated_at", now)

	if update.Username != nil {
		query = query.Set("username", *update.Username)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Logo != nil {
		query = query.Set("logo", *update.Logo)
	}

	return query.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildUpdatePasswordHashQuery(b sq.StatementBuilderType, userID int64, passwordHash string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteUserWithRoleQuery(b sq.StatementBuilderType, userID int64, role models.Role) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID, "role": string(role)}).
		ToSql()
}

func buildInsertFileQuery(b sq.StatementBuilderType, file models.StoredFile) (string, []any, error) {
	return b.Insert(filesTable).
		Columns("filename", "path", "original_name", "mime_type", "size", "uploaded_by", "uploaded_at").
		Values(file.Filename, file.Path, file.OriginalName, file.MIMEType, file.Size, file.UploadedBy, file.UploadedAt).
		Suffix(returning(fileColumns)).
		ToSql()
}

func buildSelectFileQuery(b sq.StatementBuilderType, fileID int64) (string, []any, error) {
	return b.Select(fileColumns...).
		From(filesTable).
		Where(sq.Eq{"file_id": fileID}).
		ToSql()
}

// buildListFilesQuery orders newest first. squirrel renders a slice in sq.Eq
// as an IN list.
func buildListFilesQuery(b sq.StatementBuilderType, filter models.FileFilter) (string, []any, error) {
	query := b.Select(fileColumns...).From(filesTable)

	if len(filter.MIMETypes) > 0 {
		query = query.Where(sq.Eq{"mime_type": filter.MIMETypes})
	}

	return query.
		OrderBy("uploaded_at DESC", "file_id DESC").
		ToSql()
}

func buildDeleteFileQuery(b sq.StatementBuilderType, fileID int64) (string, []any, error) {
	return b.Delete(filesTable).
		Where(sq.Eq{"file_id": fileID}).
		ToSql()
}
