package models

import (
	"mime"
	"path/filepath"
	"slices"
	"strings"
)

// FileKind groups the extensions and MIME types that describe one kind of
// accepted file. An upload matches a kind only when both its extension and
// its declared MIME type belong to that same kind.
type FileKind struct {
	Name       string
	Extensions []string
	MIMETypes  []string
}

// Matches reports whether the extension and MIME type both belong to k.
// ext must be lower-cased and include the leading dot.
func (k FileKind) Matches(ext, mimeType string) bool {
	return slices.Contains(k.Extensions, ext) && slices.Contains(k.MIMETypes, mimeType)
}

var (
	// ImageKind covers logo and avatar images.
	ImageKind = FileKind{
		Name:       "image",
		Extensions: []string{".jpeg", ".jpg", ".png", ".gif"},
		MIMETypes:  []string{"image/jpeg", "image/jpg", "image/png", "image/gif"},
	}

	// CSVKind covers dataset exports. Spreadsheet tools on Windows declare
	// CSV files as application/vnd.ms-excel.
	CSVKind = FileKind{
		Name:       "csv",
		Extensions: []string{".csv"},
		MIMETypes:  []string{"text/csv", "application/vnd.ms-excel"},
	}
)

const (
	// MaxImageSize is the size limit of the image-only profile.
	MaxImageSize int64 = 5 << 20

	// MaxDatasetSize is the size limit of the image-or-csv profile.
	MaxDatasetSize int64 = 10 << 20
)

// UploadPolicy is the explicit, constructed upload configuration handed to
// the file intake service at every call site.
type UploadPolicy struct {
	// Name identifies the profile in logs ("image-only", "image-or-csv").
	Name string

	// Kinds lists the accepted file kinds.
	Kinds []FileKind

	// MaxSize is the per-file byte limit.
	MaxSize int64

	// Dir is the single destination directory of all stored files.
	Dir string
}

// ImagePolicy returns the image-only profile used for logo uploads.
func ImagePolicy(dir string) UploadPolicy {
	return UploadPolicy{
		Name:    "image-only",
		Kinds:   []FileKind{ImageKind},
		MaxSize: MaxImageSize,
		Dir:     dir,
	}
}

// DatasetPolicy returns the image-or-csv profile used for dataset uploads.
func DatasetPolicy(dir string) UploadPolicy {
	return UploadPolicy{
		Name:    "image-or-csv",
		Kinds:   []FileKind{ImageKind, CSVKind},
		MaxSize: MaxDatasetSize,
		Dir:     dir,
	}
}

// Allows reports whether a file named originalName with the declared
// mimeType belongs to one of the policy kinds.
func (p UploadPolicy) Allows(originalName, mimeType string) bool {
	ext := strings.ToLower(filepath.Ext(originalName))
	mediaType := NormalizeMIMEType(mimeType)
	if ext == "" || mediaType == "" {
		return false
	}

	for _, kind := range p.Kinds {
		if kind.Matches(ext, mediaType) {
			return true
		}
	}

	return false
}

// NormalizeMIMEType strips parameters (e.g. "; charset=utf-8") and lower-cases
// the media type. It returns "" for values that cannot be parsed.
func NormalizeMIMEType(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ""
	}

	return strings.ToLower(mediaType)
}

// DatasetMIMETypes returns the MIME types listed by default on the dataset
// listing endpoint.
func DatasetMIMETypes() []string {
	return slices.Clone(CSVKind.MIMETypes)
}
