package restapi

import (
	"net/http"

	"obliquity.pulsartiming.org/internal/models"
)

// obliquityTableHandler lists the full table: every label with its value.
func (api *RestAPI) obliquityTableHandler(w http.ResponseWriter, r *http.Request) {
	table := api.RefManager.Table()
	defaultValue := table.Default()

	entries := table.Entries()
	list := make([]models.ObliquityEntryModel, len(entries))
	for i, entry := range entries {
		list[i] = models.NewObliquityEntry(entry.Label, entry.ValueArcsec, entry.ValueArcsec == defaultValue)
	}

	response := models.NewListResponse(list, api.tableReferences())
	api.sendResponse(w, r, response)
}
