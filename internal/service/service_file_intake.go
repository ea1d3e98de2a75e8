// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/models"
)

// fileIntakeService is the concrete implementation of FileIntakeService.
//
// A call is all-or-nothing: every file is checked against the policy
// before the first byte is written, and a failure while writing or
// registering removes the files already written by the same call.
type fileIntakeService struct {
	fileStorage    store.FileStorage
	fileRepository store.FileRepository

	logger *logger.Logger
}

func NewFileIntakeService(fileStorage store.FileStorage, fileRepository store.FileRepository, logger *logger.Logger) FileIntakeService {
	return &fileIntakeService{
		fileStorage:    fileStorage,
		fileRepository: fileRepository,
		logger:         logger,
	}
}

func (s *fileIntakeService) Accept(ctx context.Context, policy models.UploadPolicy, uploaderID *int64, files ...models.IncomingFile) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if len(files) == 0 {
		return nil, ErrNoFilesUploaded
	}
	if filepath.Clean(policy.Dir) != filepath.Clean(s.fileStorage.Dir()) {
		return nil, fmt.Errorf("%w: policy %q targets %q", ErrPolicyDir, policy.Name, policy.Dir)
	}

	for _, file := range files {
		if err := checkIncomingFile(policy, file); err != nil {
			log.Info().Err(err).Str("func", "*fileIntakeService.Accept").
				Str("policy", policy.Name).
				Str("originalname", file.OriginalName).
				Str("mimetype", file.MIMEType).
				Int64("size", file.Size).
				Msg("file rejected")
			return nil, err
		}
	}

	written := make([]models.StoredFile, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.OriginalName))

		filename, size, err := s.fileStorage.Save(ctx, ext, file.Content, policy.MaxSize)
		if err != nil {
			log.Err(err).Str("func", "*fileIntakeService.Accept").Str("originalname", file.OriginalName).Msg("error writing file")
			s.removeWritten(ctx, written)
			if errors.Is(err, store.ErrFileTooLarge) {
				return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, file.OriginalName)
			}
			return nil, fmt.Errorf("error writing %q: %w", file.OriginalName, err)
		}

		written = append(written, models.StoredFile{
			Filename:     filename,
			Path:         path.Join(filepath.ToSlash(policy.Dir), filename),
			OriginalName: file.OriginalName,
			MIMEType:     models.NormalizeMIMEType(file.MIMEType),
			Size:         size,
			UploadedBy:   uploaderID,
		})
	}

	registered, err := s.fileRepository.CreateFiles(ctx, written...)
	if err != nil {
		log.Err(err).Str("func", "*fileIntakeService.Accept").Int("files", len(written)).Msg("error registering files")
		s.removeWritten(ctx, written)
		// uploaded_by is the only reference a file row carries
		if errors.Is(err, store.ErrReferenceNotFound) {
			return nil, fmt.Errorf("%w: uploader no longer exists", ErrUserNotFound)
		}
		return nil, fmt.Errorf("error registering files: %w", err)
	}

	log.Info().Str("func", "*fileIntakeService.Accept").Str("policy", policy.Name).Int("files", len(registered)).Msg("files accepted")
	return registered, nil
}

func (s *fileIntakeService) Discard(ctx context.Context, files ...models.StoredFile) {
	log := logger.FromContext(ctx)

	for _, file := range files {
		if file.FileID != 0 {
			if err := s.fileRepository.DeleteFile(ctx, file.FileID); err != nil && !errors.Is(err, store.ErrFileNotFound) {
				log.Warn().Err(err).Str("func", "*fileIntakeService.Discard").Int64("file_id", file.FileID).Msg("error removing file record")
			}
		}
		if err := s.fileStorage.Remove(ctx, file.Filename); err != nil {
			log.Warn().Err(err).Str("func", "*fileIntakeService.Discard").Str("filename", file.Filename).Msg("error removing file")
		}
	}
}

// removeWritten deletes files of an unfinished call. The request context may
// already be canceled, so removal runs without it.
func (s *fileIntakeService) removeWritten(ctx context.Context, written []models.StoredFile) {
	log := logger.FromContext(ctx)
	cleanupCtx := context.WithoutCancel(ctx)

	for _, file := range written {
		if err := s.fileStorage.Remove(cleanupCtx, file.Filename); err != nil {
			log.Warn().Err(err).Str("func", "*fileIntakeService.removeWritten").Str("filename", file.Filename).Msg("error rolling back file")
		}
	}
}

// checkIncomingFile applies the kind and declared size rules of policy.
func checkIncomingFile(policy models.UploadPolicy, file models.IncomingFile) error {
	if file.Content == nil {
		return fmt.Errorf("%w: %s has no content", ErrNoFilesUploaded, file.OriginalName)
	}
	if !policy.Allows(file.OriginalName, file.MIMEType) {
		return fmt.Errorf("%w: %s (%s)", ErrInvalidFileType, file.OriginalName, file.MIMEType)
	}
	if file.Size > policy.MaxSize {
		return fmt.Errorf("%w: %s", ErrFileTooLarge, file.OriginalName)
	}
	return nil
}
