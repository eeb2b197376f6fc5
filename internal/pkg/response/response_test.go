package response

import (
	"Inkwell/internal/service"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	c, w := newContext()
	Success(c, Created, "ok")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ok", decode(t, w)["message"])
}

func TestErrorMappedSentinel(t *testing.T) {
	c, w := newContext()
	Error(c, service.ErrPostDeleteForbidden)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, service.ErrPostDeleteForbidden.Error(), decode(t, w)["errorMessage"])
}

func TestErrorTypeMismatch(t *testing.T) {
	var dst struct {
		Title *string `json:"title"`
	}
	err := json.Unmarshal([]byte(`{"title":1}`), &dst)
	require.Error(t, err)

	c, w := newContext()
	Error(c, err)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Equal(t, service.ErrDataFormat.Error(), decode(t, w)["errorMessage"])
}

func TestErrorUnknown(t *testing.T) {
	c, w := newContext()
	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, service.UnExpectedError.Error(), decode(t, w)["errorMessage"])
}
