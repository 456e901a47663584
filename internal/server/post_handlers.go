// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.FieldError{Msg: "Invalid request body"}))
	}

	post, err := s.postService.Create(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	id, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(ctx, userID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	id, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	likes, err := s.postService.Like(ctx, userID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	id, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	likes, err := s.postService.Unlike(ctx, userID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(likes)
}

// CreateComment handles POST /api/posts/comment/:id
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	id, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	var req service.CommentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(models.FieldError{Msg: "Invalid request body"}))
	}

	comments, err := s.postService.AddComment(ctx, userID, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := middleware.AuthenticatedUserID(c)

	id, err := s.parsePostID(c)
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId", "comment ID")
	if err != nil {
		return nil
	}

	comments, err := s.postService.RemoveComment(ctx, userID, id, commentID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// parsePostID reads the :id route parameter. A malformed post ID reads the
// same as an unknown one, so it reports 404 "Post not found".
func (s *Server) parsePostID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post not found"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}
