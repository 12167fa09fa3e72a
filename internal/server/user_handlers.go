// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	id := actorID(c)
	if id == 0 {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("You must be logged in"))
	}
	user, err := s.userService.GetProfile(c.Context(), id, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Name           string `json:"name"`
		Username       string `json:"username"`
		Handle         string `json:"handle"`
		Image          string `json:"image"`
		XUsername      string `json:"x_username"`
		MediumUsername string `json:"medium_username"`
		LinkedinURL    string `json:"linkedin_url"`
		GithubUsername string `json:"github_username"`
		WebsiteURL     string `json:"website_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:         actorID(c),
		Name:           req.Name,
		Username:       req.Username,
		Handle:         req.Handle,
		Image:          req.Image,
		XUsername:      req.XUsername,
		MediumUsername: req.MediumUsername,
		LinkedinURL:    req.LinkedinURL,
		GithubUsername: req.GithubUsername,
		WebsiteURL:     req.WebsiteURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserByHandle handles GET /api/users/handle/:handle
func (s *Server) GetUserByHandle(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if handle == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid handle"))
	}

	user, err := s.userService.GetByHandle(c.Context(), handle, s.optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), id, s.optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
