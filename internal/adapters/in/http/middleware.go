package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"storefront/api"
	"storefront/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	adminRealm   = "Admin Area"
	adminCheck   = "/api/admin/check"
	vercelSuffix = ".vercel.app"
)

// AvailabilityGate reports whether storage can currently serve requests.
type AvailabilityGate interface {
	IsAvailable() bool
}

// storageGate answers 503 on /api routes while storage is unreachable. The
// credential check does not touch storage and stays reachable.
func storageGate(gate AvailabilityGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			path := ctx.Request().URL.Path
			if !strings.HasPrefix(path, "/api/") || path == adminCheck || gate.IsAvailable() {
				return next(ctx)
			}
			return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:  http.StatusServiceUnavailable,
				Error: msgDBUnavailable,
			})
		}
	}
}

// adminAuth guards the operations the API document marks with basic auth.
func adminAuth(user, pass string, protected map[string]bool) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: adminRealm,
		Skipper: func(ctx echo.Context) bool {
			return !protected[api.RouteKey(ctx.Request().Method, ctx.Path())]
		},
		Validator: func(u, p string, _ echo.Context) (bool, error) {
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(p), []byte(pass)) == 1
			return userOK && passOK, nil
		},
	})
}

// OriginPolicy decides which browser origins may call the API.
//
// Configured origins are always allowed. Local origins are allowed outside
// production, or always when nothing is configured. With nothing configured,
// Vercel deployments are allowed too.
type OriginPolicy struct {
	Allowed    []string
	Production bool
}

func (p OriginPolicy) Allows(origin string) bool {
	for _, o := range p.Allowed {
		if o == origin {
			return true
		}
	}

	local := strings.HasPrefix(origin, "http://localhost") || strings.HasPrefix(origin, "http://127.0.0.1")
	if len(p.Allowed) > 0 {
		return local && !p.Production
	}
	if local {
		return true
	}

	return strings.HasSuffix(strings.ToLower(origin), vercelSuffix)
}

func cors(policy OriginPolicy) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return policy.Allows(origin), nil
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	})
}

func accessLog(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// requestValidation checks documented requests against the API document.
// Undocumented routes such as /health pass through.
func requestValidation(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequest).SetInternal(err)
			}

			return next(ctx)
		}
	}, nil
}
