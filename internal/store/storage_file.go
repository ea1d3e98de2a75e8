// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/perf-dashboard/internal/logger"
)

// maxNameAttempts bounds how many consecutive millisecond names Save tries.
const maxNameAttempts = 1000

// diskFileStorage is the local-directory implementation of [FileStorage].
// Every file lives directly inside dir; names never contain separators.
type diskFileStorage struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

// NewDiskFileStorage creates dir if needed and returns a [FileStorage]
// writing into it.
func NewDiskFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads directory %q: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating disk file storage")
	return &diskFileStorage{
		dir:    dir,
		now:    time.Now,
		logger: logger,
	}, nil
}

func (d *diskFileStorage) Dir() string {
	return d.dir
}

// Save reserves "<unix millis><ext>" with O_EXCL, bumping the millisecond
// value while the name is taken, then streams content into it.
func (d *diskFileStorage) Save(ctx context.Context, ext string, content io.Reader, maxSize int64) (string, int64, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	if ext != filepath.Base(ext) {
		return "", 0, ErrInvalidFilename
	}

	file, filename, err := d.reserve(ext)
	if err != nil {
		log.Err(err).Str("func", "*diskFileStorage.Save").Msg("error reserving file name")
		return "", 0, err
	}

	size, err := io.Copy(file, &contextReader{ctx: ctx, r: io.LimitReader(content, maxSize+1)})
	if err == nil && size > maxSize {
		err = ErrFileTooLarge
	}
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("error closing %q: %w", filename, closeErr)
	}

	if err != nil {
		if rmErr := os.Remove(filepath.Join(d.dir, filename)); rmErr != nil {
			log.Warn().Err(rmErr).Str("func", "*diskFileStorage.Save").Str("filename", filename).Msg("error removing partial file")
		}
		return "", 0, err
	}

	return filename, size, nil
}

func (d *diskFileStorage) reserve(ext string) (*os.File, string, error) {
	millis := d.now().UnixMilli()

	for range maxNameAttempts {
		filename := strconv.FormatInt(millis, 10) + ext
		file, err := os.OpenFile(filepath.Join(d.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, filename, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("error creating %q: %w", filename, err)
		}
		millis++
	}

	return nil, "", ErrNameSpaceExhausted
}

func (d *diskFileStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := d.pathOf(filename)
	if err != nil {
		return nil, err
	}

	return os.Open(path)
}

func (d *diskFileStorage) Remove(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := d.pathOf(filename)
	if err != nil {
		return err
	}

	return os.Remove(path)
}

// pathOf joins filename to dir after checking that it is a plain base name.
func (d *diskFileStorage) pathOf(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || filename != filepath.Base(filename) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return filepath.Join(d.dir, filename), nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
