package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	userIDHeader    = "X-User-ID"
)

// probePaths are polled by orchestrators. After the first success on a path
// further successes are not logged; failures always are.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var seenProbe sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			_, probe := probePaths[path]

			level := slog.LevelInfo
			switch {
			case probe && status >= http.StatusBadRequest:
				level = slog.LevelWarn
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case probe:
				if _, loaded := seenProbe.LoadOrStore(path, struct{}{}); loaded {
					return err
				}
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if uid := c.Request().Header.Get(userIDHeader); uid != "" {
				attrs = append(attrs, "user_id", uid)
			}
			log.Log(c.Request().Context(), level, "request", attrs...)

			return err
		}
	}
}
