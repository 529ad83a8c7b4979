package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "all good", map[string]string{"key": "value"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "all good", resp["message"])
	assert.Equal(t, "value", resp["data"].(map[string]interface{})["key"])
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusConflict, "conflict happened")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "conflict happened", resp["error"])
	assert.Equal(t, float64(http.StatusConflict), resp["code"])
}

func TestErrorHelpers(t *testing.T) {
	testCases := []struct {
		name   string
		fn     func(echo.Context, string) error
		status int
	}{
		{"bad request", BadRequestResponse, http.StatusBadRequest},
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized},
		{"forbidden", ForbiddenResponse, http.StatusForbidden},
		{"not found", NotFoundResponse, http.StatusNotFound},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError},
		{"unavailable", ServiceUnavailableResponse, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext()
			assert.NoError(t, tc.fn(c, "boom"))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestErrorHelpersDefaultMessages(t *testing.T) {
	c, rec := newTestContext()
	assert.NoError(t, UnauthorizedResponse(c, ""))

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Unauthorized", resp["error"])
}
