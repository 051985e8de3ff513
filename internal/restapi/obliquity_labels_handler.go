package restapi

import (
	"net/http"

	"obliquity.pulsartiming.org/internal/models"
)

// obliquityLabelsHandler lists every convention label in file order.
func (api *RestAPI) obliquityLabelsHandler(w http.ResponseWriter, r *http.Request) {
	labels := api.RefManager.Table().Labels()

	response := models.NewListResponse(labels, api.tableReferences())
	api.sendResponse(w, r, response)
}
