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

// fileRepository is the SQL implementation of [FileRepository] over the
// "files" table.
type fileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

func scanFile(row rowScanner) (models.StoredFile, error) {
	var file models.StoredFile
	err := row.Scan(&file.FileID, &file.Filename, &file.Path, &file.OriginalName, &file.MIMEType, &file.Size, &file.UploadedBy, &file.UploadedAt)
	return file, err
}

// CreateFiles inserts every record inside one transaction: either all rows
// are stored or none.
func (f *fileRepository) CreateFiles(ctx context.Context, files ...models.StoredFile) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if len(files) == 0 {
		return []models.StoredFile{}, nil
	}

	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFiles").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created := make([]models.StoredFile, 0, len(files))
	for _, file := range files {
		if file.UploadedAt.IsZero() {
			file.UploadedAt = time.Now().UTC()
		}

		query, args, err := buildInsertFileQuery(f.db.builder(), file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		stored, err := scanFile(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			log.Err(err).Str("func", "*fileRepository.CreateFiles").Str("filename", file.Filename).Msg("error inserting file record")
			return nil, f.db.classify(err, "unexpected DB error")
		}
		created = append(created, stored)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFiles").Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

func (f *fileRepository) FindFileByID(ctx context.Context, fileID int64) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFileQuery(f.db.builder(), fileID)
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	file, err := scanFile(f.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredFile{}, ErrFileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.FindFileByID").Int64("file_id", fileID).Msg("error selecting file record")
		return models.StoredFile{}, f.db.classify(err, "unexpected DB error")
	}

	return file, nil
}

// ListFiles returns the records matching filter, newest first.
func (f *fileRepository) ListFiles(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(f.db.builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("error selecting file records")
		return nil, f.db.classify(err, ErrExecutingQuery.Error())
	}
	defer rows.Close()

	files := make([]models.StoredFile, 0)
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		files = append(files, file)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return files, nil
}

func (f *fileRepository) DeleteFile(ctx context.Context, fileID int64) error {
	query, args, err := buildDeleteFileQuery(f.db.builder(), fileID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, f.db, "*fileRepository.DeleteFile", ErrFileNotFound, query, args...)
}
