package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestGetUserID(t *testing.T) {
	c := newTestContext(t)
	assert.Nil(t, GetUserID(c))

	id := uuid.New()
	c.Set("user_id", id)
	got := GetUserID(c)
	assert.NotNil(t, got)
	assert.Equal(t, id, *got)
}

func TestGetUserEmail(t *testing.T) {
	c := newTestContext(t)
	assert.Empty(t, GetUserEmail(c))

	c.Set("user_email", "ana@example.com")
	assert.Equal(t, "ana@example.com", GetUserEmail(c))
}

func TestParseUUIDParam(t *testing.T) {
	c := newTestContext(t)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	_, ok := parseUUIDParam(c, "id")
	assert.False(t, ok)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, ok := parseUUIDParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
