package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_NotFound(t *testing.T) {
	w := serveWithError(t, apperror.NotFound("Course not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Course not found", body.Message)
}

// Conflicts keep the legacy 400 mapping rather than 409.
func TestErrorHandler_ConflictMapsTo400(t *testing.T) {
	w := serveWithError(t, apperror.Conflict("User is already enrolled in this course"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User is already enrolled in this course", body.Message)
}

func TestErrorHandler_InvalidArgument(t *testing.T) {
	w := serveWithError(t, apperror.InvalidArgument("Invalid user identifier: abc"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorHandler_UnclassifiedHidesDetails(t *testing.T) {
	w := serveWithError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred. Please try again later.", body.Message)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestErrorHandler_UnavailableMapsTo500(t *testing.T) {
	w := serveWithError(t, apperror.Unavailable(errors.New("dial tcp: refused")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}
