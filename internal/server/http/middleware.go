package httpserver

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/recipevault/recipevault/internal/model"
	"github.com/recipevault/recipevault/internal/token"
)

const identityKey = "rv.identity"

// requireAuth verifies the Bearer token and stores the decoded identity for
// the handler. Failure short-circuits before any store access.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	ident, err := s.tokens.Verify(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		if errors.Is(err, token.ErrNoToken) {
			return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
		}
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid or expired token.")
	}
	c.Locals(identityKey, ident)
	return c.Next()
}

// identityFromCtx returns the identity stored by requireAuth. Handlers pass
// the user id from here explicitly into every service call.
func identityFromCtx(c *fiber.Ctx) (model.Identity, bool) {
	ident, ok := c.Locals(identityKey).(model.Identity)
	return ident, ok
}

// logRequests emits one structured log line per request. Metadata only,
// never payloads or credentials.
func (s *Server) logRequests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.log.Info("http",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// recoverPanics converts handler panics into a generic 500 response.
func (s *Server) recoverPanics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Path()),
				)
				_ = errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
			}
		}()
		return c.Next()
	}
}
