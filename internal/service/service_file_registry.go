package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/models"
)

type fileRegistryService struct {
	fileRepository store.FileRepository
	fileStorage    store.FileStorage

	logger *logger.Logger
}

func NewFileRegistryService(fileRepository store.FileRepository, fileStorage store.FileStorage, logger *logger.Logger) FileRegistryService {
	return &fileRegistryService{
		fileRepository: fileRepository,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

func (s *fileRegistryService) List(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error) {
	files, err := s.fileRepository.ListFiles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	return files, nil
}

// Delete removes the file from disk and then its record. A file that is
// already gone from disk is tolerated; any other disk error keeps the
// record.
func (s *fileRegistryService) Delete(ctx context.Context, fileID int64) error {
	log := logger.FromContext(ctx)

	file, err := s.fileRepository.FindFileByID(ctx, fileID)
	if errors.Is(err, store.ErrFileNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("error loading file record: %w", err)
	}

	err = s.fileStorage.Remove(ctx, file.Filename)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("func", "*fileRegistryService.Delete").Int64("file_id", fileID).Str("filename", file.Filename).Msg("file already absent from disk")
	default:
		log.Err(err).Str("func", "*fileRegistryService.Delete").Int64("file_id", fileID).Msg("error removing file from disk")
		return fmt.Errorf("error removing %q: %w", file.Filename, err)
	}

	err = s.fileRepository.DeleteFile(ctx, fileID)
	if errors.Is(err, store.ErrFileNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting file record: %w", err)
	}

	log.Info().Str("func", "*fileRegistryService.Delete").Int64("file_id", fileID).Msg("file deleted")
	return nil
}
