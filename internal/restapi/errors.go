package restapi

import (
	"encoding/json"
	"net/http"

	"obliquity.pulsartiming.org/internal/models"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	response := struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}{
		Code:        http.StatusUnauthorized,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "permission denied",
		Version:     1, // Note: version 1, not 2 as in a successful response. Kept for back-compat.
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(w).Encode(response)
	if err != nil && api.Logger != nil {
		api.Logger.Error("failed to encode invalid API key response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	response := struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil && api.Logger != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil && api.Logger != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// sendNotFound sends a 404 response in the standard envelope
func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	response := models.NewResponse(http.StatusNotFound, nil, "resource not found")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	err := json.NewEncoder(w).Encode(response)
	if err != nil && api.Logger != nil {
		api.Logger.Error("failed to encode not found response", "error", err)
	}
}
