package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"obliquity.pulsartiming.org/internal/app"
	"obliquity.pulsartiming.org/internal/logging"
	"obliquity.pulsartiming.org/internal/refdata"
)

// createTestApi creates a RestAPI instance backed by the testdata table.
func createTestApi(t *testing.T) *RestAPI {
	refConfig := refdata.Config{
		ObliquityURL: filepath.Join("../../testdata", "ecliptic.dat"),
	}
	manager, err := refdata.InitManager(refConfig, nil)
	require.NoError(t, err)

	application := &app.Application{
		Config: app.Config{
			Env:     "test",
			APIKeys: []string{"TEST"},
		},
		RefConfig:  refConfig,
		RefManager: manager,
	}

	return &RestAPI{Application: application}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the raw response plus the decoded body.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, map[string]interface{}) {
	api := createTestApi(t)
	return serveApiAndRetrieveEndpoint(t, api, endpoint)
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, map[string]interface{}) {
	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var body map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&body)
	require.NoError(t, err)

	return resp, body
}

// envelopeData extracts the data object from a standard response envelope.
func envelopeData(t *testing.T, body map[string]interface{}) map[string]interface{} {
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response should carry a data object")
	return data
}
