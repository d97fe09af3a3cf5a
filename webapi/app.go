// Package webapi assembles the Fiber application: middleware, liveness and
// the payment-instruction routes.
package webapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/payflowhq/payflow/pkg/app"
	"github.com/payflowhq/payflow/webapi/common"
)

// HeaderRequestID carries the per-request correlation identifier.
const HeaderRequestID = "X-Request-ID"

// SetupApp builds the Fiber app with all middleware and routes.
func SetupApp(a *app.App) *fiber.App {
	f := fiber.New(fiber.Config{
		AppName:   "payflow",
		BodyLimit: a.Config.Server.BodyLimitKiB * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			message := "Internal Server Error"
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
				message = fiberErr.Message
			}
			return common.FailedResponseJSON(c, status, message, nil)
		},
	})

	f.Use(recover.New())
	f.Use(requestLogging(a))
	f.Use(limiter.New(limiter.Config{
		Max:        a.Config.Server.RateLimit,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.FailedResponseJSON(
				c, fiber.StatusTooManyRequests, "Too Many Requests", nil)
		},
	}))

	f.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("payflow is up")
	})

	registerRoutes(f, a)
	return f
}

// requestLogging tags every request with a correlation id and logs its
// outcome.
func requestLogging(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()

		a.Logger.Info("request",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
