package http

import (
	"net/http"

	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetAdminCheck handles GET /api/admin/check. Reaching it means the basic auth
// middleware accepted the credentials.
func (s *Server) GetAdminCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}
