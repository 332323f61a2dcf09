package http

import (
	"log/slog"
	"net/http"

	"storefront/api"
	"storefront/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds the transport settings of the HTTP surface.
type RouterConfig struct {
	AdminUser        string
	AdminPass        string
	Origins          OriginPolicy
	BodyLimit        string
	ValidateRequests bool
}

// NewRouter builds the echo instance serving the API document's operations plus
// /health and /swagger/*.
//
// Middleware order: recover, request id, access log, CORS, body limit, basic
// auth, storage gate, request validation.
func NewRouter(
	cfg RouterConfig,
	server *Server,
	doc *openapi3.T,
	gate AvailabilityGate,
	logger *slog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(accessLog(logger))
	e.Use(cors(cfg.Origins))
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	e.Use(adminAuth(cfg.AdminUser, cfg.AdminPass, api.ProtectedOperations(doc)))
	e.Use(storageGate(gate))
	if cfg.ValidateRequests {
		validation, err := requestValidation(doc)
		if err != nil {
			return nil, err
		}
		e.Use(validation)
	}

	if err := api.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
