package controllers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns a request id to every request (honoring one supplied
// by the caller), echoes it in the response, and logs the completed
// request with it.
func RequestID() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Locals("request_id", id)
		ctx.Set(requestIDHeader, id)

		err := ctx.Next()

		slog.Info("request completed",
			"request_id", id,
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", ctx.Response().StatusCode(),
		)
		return err
	}
}
