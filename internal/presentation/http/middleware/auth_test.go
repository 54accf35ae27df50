package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRoleRouter(role enum.Role, gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_role", role)
		c.Next()
	})
	router.POST("/x", gate, func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true})
	})
	return router
}

func TestRequireMutationByRole(t *testing.T) {
	tests := []struct {
		role     enum.Role
		expected int
	}{
		{enum.RoleSuperAdmin, 200},
		{enum.RoleAdmin, 200},
		{enum.RoleUser, 403},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			router := newRoleRouter(tt.role, RequireMutation())
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRequireUserManagementByRole(t *testing.T) {
	tests := []struct {
		role     enum.Role
		expected int
	}{
		{enum.RoleSuperAdmin, 200},
		{enum.RoleAdmin, 403},
		{enum.RoleUser, 403},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			router := newRoleRouter(tt.role, RequireUserManagement())
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/x", RequireRole(enum.RoleSuperAdmin), func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, 403, w.Code)
}
