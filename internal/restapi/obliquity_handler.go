package restapi

import (
	"errors"
	"net/http"

	"obliquity.pulsartiming.org/internal/models"
	"obliquity.pulsartiming.org/internal/obliquity"
	"obliquity.pulsartiming.org/internal/utils"
)

// obliquityHandler serves a single obliquity value. The convention label
// comes from the :id path parameter or the `label` query parameter; with
// neither present the DEFAULT entry is returned.
func (api *RestAPI) obliquityHandler(w http.ResponseWriter, r *http.Request) {
	label := utils.ExtractLabelFromParams(r)
	if label == "" {
		label = r.URL.Query().Get("label")
	}

	if label != "" {
		if err := utils.ValidateLabel(label); err != nil {
			fieldErrors := map[string][]string{
				"label": {err.Error()},
			}
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}
	}

	value, err := api.RefManager.Lookup(label)
	if err != nil {
		if errors.Is(err, obliquity.ErrUnknownLabel) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	resolved := label
	if resolved == "" {
		resolved = obliquity.DefaultLabel
	}

	table := api.RefManager.Table()
	entry := models.NewObliquityEntry(resolved, value, value == table.Default())

	response := models.NewEntryResponse(entry, api.tableReferences())
	api.sendResponse(w, r, response)
}
