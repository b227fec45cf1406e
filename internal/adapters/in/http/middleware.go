package http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"shiprates/internal/core/domain/model/kernel"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns every request a correlation id, honoring one supplied
// by the caller, and echoes it back in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = kernel.NewUUID().String()
			}
			ctx.Response().Header().Set(requestIDHeader, id)
			ctx.Set("requestID", id)
			return next(ctx)
		}
	}
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			logger.InfoContext(ctx.Request().Context(), "request handled",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"status", ctx.Response().Status,
				"duration", time.Since(start),
				"requestID", ctx.Get("requestID"),
			)
			return err
		}
	}
}
