package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/perf-dashboard/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a {"message": ...} body with statusCode.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
