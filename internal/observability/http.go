package observability

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// EchoMiddleware returns the HTTP tracing middleware for serviceName.
func EchoMiddleware(serviceName string) echo.MiddlewareFunc {
	if strings.TrimSpace(serviceName) == "" {
		serviceName = "partnerhub"
	}
	return otelecho.Middleware(serviceName, otelecho.WithSkipper(traceSkipper))
}

// EchoRequestMetadataMiddleware copies the request id and matched route into
// the request context so logs and spans carry them.
func EchoRequestMetadataMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := WithRequestMetadata(c.Request().Context(), requestID(c), resolvedRoute(c))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func traceSkipper(c echo.Context) bool {
	switch strings.TrimSpace(c.Request().URL.Path) {
	case "/health", "/healthz", "/live", "/ready", "/favicon.ico":
		return true
	default:
		return false
	}
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func resolvedRoute(c echo.Context) string {
	route := strings.TrimSpace(c.Path())
	if route != "" {
		return route
	}
	return strings.TrimSpace(c.Request().URL.Path)
}
