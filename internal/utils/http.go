package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractLabelFromParams retrieves the label path parameter from the request
// context and removes file extensions like ".json".
func ExtractLabelFromParams(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawLabel := params.ByName("id")
	return strings.Split(rawLabel, ".json")[0]
}
