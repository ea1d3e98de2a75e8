package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/migrations"
)

// sqliteBusyTimeoutMillis bounds how long a writer waits for the database lock.
const sqliteBusyTimeoutMillis = 5000

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, path, err := sqliteDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	// db will be in file
	if path != "" {
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one writer at a time; readers share the same connection
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

// sqliteDSN converts a sqlite:// or file: DSN into the go-sqlite3 form with
// foreign keys and a busy timeout enabled. path is "" for in-memory
// databases.
func sqliteDSN(raw string) (dsn string, path string, err error) {
	rest := raw
	switch {
	case strings.HasPrefix(raw, "sqlite://"):
		rest = strings.TrimPrefix(raw, "sqlite://")
	case strings.HasPrefix(raw, "file:"):
		rest = strings.TrimPrefix(raw, "file:")
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, schemeOf(raw))
	}

	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == "" {
		return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}
	if query.Get("_foreign_keys") == "" && query.Get("_fk") == "" {
		query.Set("_foreign_keys", "on")
	}
	if query.Get("_busy_timeout") == "" && query.Get("_timeout") == "" {
		query.Set("_busy_timeout", fmt.Sprint(sqliteBusyTimeoutMillis))
	}

	dsn = "file:" + path + "?" + query.Encode()
	if path == ":memory:" || query.Get("mode") == "memory" {
		return dsn, "", nil
	}

	return dsn, path, nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if err == nil || !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch {
	case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqliteErr.Code == sqlite3.ErrBusy, sqliteErr.Code == sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// UniqueColumn reads the column from messages of the form
// "UNIQUE constraint failed: users.username".
func (c *SQLiteErrorClassifier) UniqueColumn(err error) string {
	if c.Classify(err) != UniqueViolation {
		return ""
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, ".username"):
		return "username"
	case strings.Contains(msg, ".email"):
		return "email"
	}
	return ""
}
