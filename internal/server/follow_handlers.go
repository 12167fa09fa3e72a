// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"glimpse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles POST /api/follow/:userId
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	res, err := s.followService.Toggle(c.Context(), actorID(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.ToggleOperations.WithLabelValues("follow", toggleState(res.Following)).Inc()

	return c.JSON(res)
}

// GetFollowers handles GET /api/users/:id/followers?page
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page, err := s.followService.Followers(c.Context(), userID, s.optionalUserID(c), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetFollowing handles GET /api/users/:id/following?page
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page, err := s.followService.Following(c.Context(), userID, s.optionalUserID(c), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}
