package restapi

import (
	"encoding/json"
	"net/http"

	"obliquity.pulsartiming.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// tableReferences builds the references block describing the loaded table.
func (api *RestAPI) tableReferences() models.ReferencesModel {
	references := models.NewEmptyReferences()
	manager := api.RefManager
	if manager == nil {
		return references
	}

	references.Sources = append(references.Sources,
		models.NewSourceReference(manager.Source(), manager.Table().Len(), manager.LastUpdated()))
	return references
}
