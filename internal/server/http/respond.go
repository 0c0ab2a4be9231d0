package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorJSON writes the uniform error body. All failures are JSON objects,
// never bare strings or arrays.
func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// internalError logs the real cause server-side and returns a generic 500.
// Store errors and stack traces never reach the client.
func (s *Server) internalError(c *fiber.Ctx, op string, err error) error {
	s.log.Error("internal error",
		zap.String("op", op),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return errorJSON(c, fiber.StatusInternalServerError, "Internal server error.")
}
