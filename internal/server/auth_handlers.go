// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.Context()

	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.FieldError{Msg: "Invalid request body"}))
	}

	token, err := s.accountService.Register(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

// Login handles POST /api/auth
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.FieldError{Msg: "Invalid request body"}))
	}

	token, err := s.accountService.Login(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

// GetCurrentUser handles GET /api/auth
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	user, err := s.accountService.CurrentUser(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
