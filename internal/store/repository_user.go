package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works on both PostgreSQL and SQLite; the dialect only
// changes placeholders and error classification.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		role string
	)
	err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &role, &user.Logo, &user.CreatedAt, &user.UpdatedAt)
	user.Role = models.Role(role)
	return user, err
}

// CreateUser inserts user and returns it with the database-assigned id.
//
// A unique violation on username or email yields [ErrUsernameAlreadyExists]
// or [ErrEmailAlreadyExists]; this is the authoritative duplicate check.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err, "unexpected DB error")
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "user_id", userID)
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "username", username)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

func (r *userRepository) findUser(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder(), map[string]any{column: value})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error selecting user")
		return models.User{}, r.db.classify(err, "unexpected DB error")
	}

	return user, nil
}

// ListUsersByRole returns all accounts with role, ordered by username.
func (r *userRepository) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersByRoleQuery(r.db.builder(), role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersByRole").Msg("error selecting users")
		return nil, r.db.classify(err, ErrExecutingQuery.Error())
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return users, nil
}

// UpdateUser writes the non-nil fields of update and returns the stored row.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder(), update, time.Now().UTC())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", update.UserID).Msg("error updating user")
		return models.User{}, r.db.classify(err, "unexpected DB error")
	}

	return user, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	query, args, err := buildUpdatePasswordHashQuery(r.db.builder(), userID, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, "*userRepository.UpdatePasswordHash", ErrUserNotFound, query, args...)
}

// DeleteUserWithRole deletes the account only if it has role.
func (r *userRepository) DeleteUserWithRole(ctx context.Context, userID int64, role models.Role) error {
	query, args, err := buildDeleteUserWithRoleQuery(r.db.builder(), userID, role)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, "*userRepository.DeleteUserWithRole", ErrUserNotFound, query, args...)
}

// execAffectingOne runs a DML statement and maps zero affected rows to
// notFound.
func execAffectingOne(ctx context.Context, db *DB, funcName string, notFound error, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return db.classify(err, "unexpected DB error")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
