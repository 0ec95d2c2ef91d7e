package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// HeaderCorrelationID is the header carrying the request correlation id.
const HeaderCorrelationID = "X-Correlation-Id"

const correlationIDContextKey = "correlation_id"

// CorrelationID propagates the caller's correlation id, generating one when
// absent, and echoes it on the response so clients can reference requests
// in support conversations.
func CorrelationID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get(HeaderCorrelationID)
			if id == "" {
				id = uuid.NewString()
			}

			ctx.Set(correlationIDContextKey, id)
			ctx.Response().Header().Set(HeaderCorrelationID, id)

			return next(ctx)
		}
	}
}

// RequestLogger emits one structured log line per request including the
// correlation id, method, path, status and latency.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"correlation_id", ctx.Get(correlationIDContextKey),
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
				logger.Error("request", attrs...)
				return nil
			}

			logger.Info("request", attrs...)
			return nil
		},
	})
}

// RateLimiter throttles requests per client IP using an in-memory token
// bucket. rps is the sustained refill rate, burst the bucket size.
func RateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rps),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
	})
}
