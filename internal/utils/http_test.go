package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractLabelFromParams(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"IAU1976.json", "IAU1976"},
		{"IERS2010", "IERS2010"},
		{"", ""},
	}

	for _, tc := range tests {
		r := httptest.NewRequest("GET", "/api/reference/obliquity/"+tc.raw, nil)
		params := httprouter.Params{{Key: "id", Value: tc.raw}}
		r = r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))

		assert.Equal(t, tc.want, ExtractLabelFromParams(r))
	}
}
