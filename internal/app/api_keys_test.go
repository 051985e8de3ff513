package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidAPIKey(t *testing.T) {
	application := &Application{
		Config: Config{APIKeys: []string{"TEST", "other-key"}},
	}

	assert.False(t, application.IsInvalidAPIKey("TEST"))
	assert.False(t, application.IsInvalidAPIKey("other-key"))
	assert.True(t, application.IsInvalidAPIKey("wrong"))
	assert.True(t, application.IsInvalidAPIKey(""))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	application := &Application{
		Config: Config{APIKeys: []string{"TEST"}},
	}

	r := httptest.NewRequest("GET", "/api/reference/obliquity.json?key=TEST", nil)
	assert.False(t, application.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/reference/obliquity.json?key=invalid", nil)
	assert.True(t, application.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/reference/obliquity.json", nil)
	assert.True(t, application.RequestHasInvalidAPIKey(r))
}
