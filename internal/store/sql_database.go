package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/migrations"
)

// DB is a database handle bound to its SQL dialect.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. The scheme selects the
// driver: postgres:// and postgresql:// use pgx, sqlite:// and file: use
// go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, schemeOf(cfg.DSN))
	}
}

// Migrate applies the embedded migrations of the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// builder returns a squirrel statement builder with the placeholder format
// of the connection dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// classify maps a driver error to a store sentinel. Unknown errors are
// returned wrapped with msg.
func (db *DB) classify(err error, msg string) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		switch db.errorClassificator.UniqueColumn(err) {
		case "username":
			return ErrUsernameAlreadyExists
		case "email":
			return ErrEmailAlreadyExists
		}
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %s: %w", ErrReferenceNotFound, msg, err)
	case Retryable:
		return fmt.Errorf("%w: %s: %w", ErrTransient, msg, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func schemeOf(dsn string) string {
	if i := strings.Index(dsn, ":"); i > 0 {
		return dsn[:i]
	}
	return ""
}
