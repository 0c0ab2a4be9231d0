package httpserver

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/recipevault/recipevault/internal/errs"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister creates a new account.
func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Name, email, and password are required.")
	}

	userID, err := s.auth.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyExists):
			return errorJSON(c, fiber.StatusConflict, "An account with that email already exists.")
		case errors.Is(err, errs.ErrValidation):
			return errorJSON(c, fiber.StatusBadRequest, "Name, email, and password are required.")
		default:
			return s.internalError(c, "register", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully.",
		"userId":  userID,
	})
}

// handleLogin authenticates and issues a session token. Unknown email and
// wrong password produce byte-identical responses.
func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if req.Email == "" || req.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Email and password are required.")
	}

	tok, user, err := s.auth.Login(c.Context(), req.Email, req.Password, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			return errorJSON(c, fiber.StatusUnauthorized, "Invalid email or password.")
		case errors.Is(err, errs.ErrRateLimited):
			var rl *errs.RateLimitedError
			if errors.As(err, &rl) && rl.RetryAfter > 0 {
				secs := int((rl.RetryAfter + time.Second - 1) / time.Second)
				c.Set(fiber.HeaderRetryAfter, strconv.Itoa(secs))
			}
			return errorJSON(c, fiber.StatusTooManyRequests, "Too many failed login attempts. Try again later.")
		case errors.Is(err, errs.ErrValidation):
			return errorJSON(c, fiber.StatusBadRequest, "Email and password are required.")
		default:
			return s.internalError(c, "login", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful.",
		"token":   tok.Signed,
		"user":    user,
	})
}
