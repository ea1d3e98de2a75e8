package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
)

// Storages aggregates every persistence component of the server.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	FileRepository FileRepository
	FileStorage    FileStorage
}

// NewStorages connects to the database named by cfg.DB, applies pending
// migrations and prepares the uploads directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("database migrated")

	fileStorage, err := NewDiskFileStorage(cfg.Files.UploadsDir, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		FileRepository: NewFileRepository(db, log),
		FileStorage:    fileStorage,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
