package http

import (
	"io/fs"
	"net/http"

	"github.com/MKhiriev/perf-dashboard/models"
)

// uploads serves stored files under /uploads/. Directory listings are not
// served.
func (h *Handler) uploads() http.Handler {
	return http.StripPrefix("/"+models.UploadsURLPrefix+"/", http.FileServer(filesOnly{http.Dir(h.uploadsDir)}))
}

// filesOnly hides directories from http.FileServer.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}

	return file, nil
}
