package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithRole(t *testing.T, role string, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/orders/1/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("user_role", role)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	gate := RequireRole(models.RoleAdmin, models.RoleDriver)

	t.Run("Allowed roles pass through", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, runWithRole(t, models.RoleAdmin, gate).Code)
		assert.Equal(t, http.StatusOK, runWithRole(t, models.RoleDriver, gate).Code)
	})

	t.Run("Customer is refused", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, runWithRole(t, models.RoleCustomer, gate).Code)
	})

	t.Run("Missing role is refused", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, runWithRole(t, "", gate).Code)
	})
}
