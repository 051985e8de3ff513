package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObliquityLabelsHandlerRequiresValidApiKey(t *testing.T) {
	resp, body := serveAndRetrieveEndpoint(t, "/api/reference/obliquity-labels.json?key=invalid")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", body["text"])
}

func TestObliquityLabelsHandlerListsLabelsInFileOrder(t *testing.T) {
	resp, body := serveAndRetrieveEndpoint(t, "/api/reference/obliquity-labels.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelopeData(t, body)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)

	expected := []interface{}{"IAU1976", "IERS1992", "DE403", "IERS2003", "IERS2010", "IAU2005", "DEFAULT"}
	assert.Equal(t, expected, list)
	assert.False(t, data["limitExceeded"].(bool))
}

func TestObliquityTableHandlerListsEntries(t *testing.T) {
	resp, body := serveAndRetrieveEndpoint(t, "/api/reference/obliquity-table.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelopeData(t, body)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 7)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "IAU1976", first["label"])
	assert.InDelta(t, 84381.448, first["valueArcsec"], 1e-9)
	assert.False(t, first["isDefault"].(bool))

	last := list[6].(map[string]interface{})
	assert.Equal(t, "DEFAULT", last["label"])
	assert.True(t, last["isDefault"].(bool))
}
