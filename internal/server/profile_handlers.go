// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	profile, err := s.profileService.GetMine(ctx, userID)
	if err != nil {
		return respondProfileError(c, err)
	}

	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	var req service.UpsertProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.FieldError{Msg: "Invalid request body"}))
	}

	profile, err := s.profileService.Upsert(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// GetProfiles handles GET /api/profile
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.GetAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profile/user/:userId
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	ctx := c.Context()

	// A malformed user ID is indistinguishable from an unknown one to clients.
	id, err := c.ParamsInt("userId")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Profile not found"})
	}

	profile, err := s.profileService.GetByUser(ctx, uint(id))
	if err != nil {
		return respondProfileError(c, err)
	}

	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	if err := s.accountService.DeleteCascade(ctx, userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"msg": "User deleted"})
}

// AddExperience handles PUT /api/profile/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	var req service.ExperienceInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.FieldError{Msg: "Invalid request body"}))
	}

	profile, err := s.profileService.AddExperience(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:expId
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	expID, err := s.parseID(c, "expId", "experience ID")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveExperience(ctx, userID, expID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	var req service.EducationInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.FieldError{Msg: "Invalid request body"}))
	}

	profile, err := s.profileService.AddEducation(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:eduId
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	eduID, err := s.parseID(c, "eduId", "education ID")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveEducation(ctx, userID, eduID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}
