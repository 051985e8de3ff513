package restapi

import (
	"net/http"
	"time"

	"obliquity.pulsartiming.org/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	entry := models.NewCurrentTime(time.Now())

	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
