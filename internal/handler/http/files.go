package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/utils"
	"github.com/MKhiriev/perf-dashboard/models"
)

// Multipart fields of the dataset uploads.
const (
	formDatasetFile   = "csvFile"
	formDatasetFolder = "csvFiles"
)

// mimeTypeQuery narrows GET /csv-files; repeat it or separate values with
// commas. Without it the dataset MIME types are listed.
const mimeTypeQuery = "mimetype"

func (h *Handler) uploadDataset(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.acceptDatasets(w, r, formDatasetFile, 1, "*Handler.uploadDataset")
	if !ok {
		return
	}

	utils.WriteJSON(w, models.UploadResponse{Message: app.MsgFileUploaded, File: stored[0]}, http.StatusCreated)
}

func (h *Handler) uploadDatasetFolder(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.acceptDatasets(w, r, formDatasetFolder, maxBatchFiles, "*Handler.uploadDatasetFolder")
	if !ok {
		return
	}

	utils.WriteJSON(w, models.BatchUploadResponse{Message: app.MsgFilesUploaded, Files: stored, Length: len(stored)}, http.StatusCreated)
}

// acceptDatasets runs a dataset upload of field through the intake service
// and writes the error response itself when it fails.
func (h *Handler) acceptDatasets(w http.ResponseWriter, r *http.Request, field string, maxFiles int, fn string) ([]models.StoredFile, bool) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err, fn)
		return nil, false
	}

	if err = parseForm(w, r, h.services.DatasetPolicy, maxFiles); err != nil {
		h.writeError(w, r, err, fn)
		return nil, false
	}

	files, closeForm, err := formFiles(r, field)
	defer closeForm()
	if err != nil {
		h.writeError(w, r, err, fn)
		return nil, false
	}
	if len(files) > maxFiles {
		h.writeError(w, r, fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(files), maxFiles), fn)
		return nil, false
	}

	stored, err := h.services.FileIntakeService.Accept(r.Context(), h.services.DatasetPolicy, &userID, files...)
	if err != nil {
		h.writeError(w, r, err, fn)
		return nil, false
	}

	return stored, true
}

func (h *Handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	filter := models.FileFilter{MIMETypes: mimeTypesFromQuery(r)}

	files, err := h.services.FileRegistryService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listDatasets")
		return
	}

	utils.WriteJSON(w, files, http.StatusOK)
}

func (h *Handler) deleteDataset(w http.ResponseWriter, r *http.Request) {
	fileID, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteDataset")
		return
	}

	if err = h.services.FileRegistryService.Delete(r.Context(), fileID); err != nil {
		h.writeError(w, r, err, "*Handler.deleteDataset")
		return
	}

	utils.WriteMessage(w, app.MsgFileDeleted, http.StatusOK)
}

func (h *Handler) summarizeDataset(w http.ResponseWriter, r *http.Request) {
	fileID, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.summarizeDataset")
		return
	}

	summary, err := h.services.DatasetService.Summarize(r.Context(), fileID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.summarizeDataset")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func mimeTypesFromQuery(r *http.Request) []string {
	values, ok := r.URL.Query()[mimeTypeQuery]
	if !ok {
		return models.DatasetMIMETypes()
	}

	var mimeTypes []string
	requested := false
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) != "" {
				requested = true
			}
			if mimeType := models.NormalizeMIMEType(part); mimeType != "" {
				mimeTypes = append(mimeTypes, mimeType)
			}
		}
	}

	// only a blank ?mimetype= widens the listing to every file
	if requested && len(mimeTypes) == 0 {
		return models.DatasetMIMETypes()
	}
	return mimeTypes
}
