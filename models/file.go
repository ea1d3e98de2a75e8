package models

import (
	"io"
	"time"
)

// IncomingFile is a single file part received from a client. It is validated
// once at the intake boundary before any byte is written to disk.
type IncomingFile struct {
	// FieldName is the multipart form field the file arrived in.
	FieldName string

	// OriginalName is the client-side file name. Only its extension is used
	// for naming the stored file.
	OriginalName string

	// MIMEType is the Content-Type declared by the client for this part.
	MIMEType string

	// Size is the declared size in bytes.
	Size int64

	// Content streams the file bytes.
	Content io.Reader
}

// StoredFile is a registry record of an uploaded file, as persisted in the
// "files" table.
type StoredFile struct {
	// FileID is the unique identifier assigned by the database.
	FileID int64 `json:"_id"`

	// Filename is the generated name on disk: unix milliseconds + extension.
	Filename string `json:"filename"`

	// Path is the location relative to the server working directory,
	// always inside the uploads directory (e.g. "uploads/1718000000000.csv").
	Path string `json:"path"`

	// OriginalName is the client-side file name.
	OriginalName string `json:"originalname"`

	// MIMEType is the declared content type accepted by validation.
	MIMEType string `json:"mimetype"`

	// Size is the number of bytes written to disk.
	Size int64 `json:"size"`

	// UploadedBy references the uploader account; nil when the account is
	// gone or the upload happened before an account existed (admin logo at
	// registration).
	UploadedBy *int64 `json:"uploadedBy,omitempty"`

	UploadedAt time.Time `json:"uploadedAt"`
}

// URL returns the public URL under which the static file server exposes the
// stored file.
func (f StoredFile) URL() string {
	return "/" + UploadsURLPrefix + "/" + f.Filename
}

// UploadsURLPrefix is the URL path segment under which the uploads directory
// is served.
const UploadsURLPrefix = "uploads"

// FileFilter narrows a registry listing. An empty MIMETypes slice lists
// every record.
type FileFilter struct {
	MIMETypes []string
}
