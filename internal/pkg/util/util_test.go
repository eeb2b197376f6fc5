package util

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank(ptr("")))
	assert.True(t, IsBlank(ptr("   \t\n")))
	assert.False(t, IsBlank(ptr(" Hello ")))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(ptr("")))
	assert.False(t, IsEmpty(ptr(" ")))
	assert.False(t, IsEmpty(ptr("댓글")))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		_, err = ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}

func newBodyContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c
}

func TestDecodeBody(t *testing.T) {
	type body struct {
		Title *string `json:"title"`
	}

	var b body
	empty, err := DecodeBody(newBodyContext(""), &b)
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = DecodeBody(newBodyContext("{}"), &b)
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = DecodeBody(newBodyContext(`{"title":"hi"}`), &b)
	require.NoError(t, err)
	assert.False(t, empty)
	require.NotNil(t, b.Title)
	assert.Equal(t, "hi", *b.Title)

	_, err = DecodeBody(newBodyContext(`{"title":`), &b)
	assert.Error(t, err)

	_, err = DecodeBody(newBodyContext(`{"title":3}`), &b)
	assert.Error(t, err)
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	ids, err := StrSliceToUInt64Slice([]string{"1", "20"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 20}, ids)

	_, err = StrSliceToUInt64Slice([]string{"x"})
	assert.Error(t, err)
}

func TestDatePrefix(t *testing.T) {
	ts := time.Date(2023, 7, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2023-07-07", DatePrefix(ts))
}
