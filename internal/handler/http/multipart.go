package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/perf-dashboard/internal/service"
	"github.com/MKhiriev/perf-dashboard/models"
)

const (
	// maxFormOverhead covers text fields and part headers of a form.
	maxFormOverhead = 1 << 20

	// maxBatchFiles caps the number of files of one folder upload.
	maxBatchFiles = 50

	// formMemory is the part of a form kept in memory; the rest spills to
	// temporary files.
	formMemory = 8 << 20
)

// parseForm parses a multipart body limited to maxFiles files of the
// policy size. An oversized body fails with service.ErrFileTooLarge.
func parseForm(w http.ResponseWriter, r *http.Request, policy models.UploadPolicy, maxFiles int) error {
	r.Body = http.MaxBytesReader(w, r.Body, policy.MaxSize*int64(maxFiles)+maxFormOverhead)

	err := r.ParseMultipartForm(formMemory)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: request body exceeds %d bytes", service.ErrFileTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}

// formFiles opens the parts uploaded under field. The returned close
// function releases them and the form's temporary files.
func formFiles(r *http.Request, field string) ([]models.IncomingFile, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}

	if r.MultipartForm == nil {
		return nil, closeAll, nil
	}

	headers := r.MultipartForm.File[field]
	files := make([]models.IncomingFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		opened = append(opened, f)

		files = append(files, models.IncomingFile{
			FieldName:    field,
			OriginalName: header.Filename,
			MIMEType:     header.Header.Get("Content-Type"),
			Size:         header.Size,
			Content:      io.Reader(f),
		})
	}

	return files, closeAll, nil
}

// formValue returns the trimmed first value of a text field.
func formValue(r *http.Request, field string) string {
	if r.MultipartForm == nil {
		return ""
	}
	if values := r.MultipartForm.Value[field]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// optionalFile returns the first file of field, or nil when none was sent.
func optionalFile(files []models.IncomingFile) *models.IncomingFile {
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
