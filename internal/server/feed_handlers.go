// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"glimpse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetLatestFeed handles GET /api/posts?cursor&limit
func (s *Server) GetLatestFeed(c *fiber.Ctx) error {
	cursor, err := parseCursor(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	page, err := s.feedService.Latest(c.Context(), s.optionalUserID(c), cursor, parseLimit(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.FeedPagesServed.WithLabelValues("latest").Inc()
	return c.JSON(page)
}

// GetFollowingFeed handles GET /api/posts/following?cursor&limit
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	cursor, err := parseCursor(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	page, err := s.feedService.Following(c.Context(), actorID(c), cursor, parseLimit(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.FeedPagesServed.WithLabelValues("following").Inc()
	return c.JSON(page)
}
