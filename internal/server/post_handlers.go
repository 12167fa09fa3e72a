// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"

	"glimpse/internal/middleware"
	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postBody is the shared request shape for posts, comments and quotes.
type postBody struct {
	Content      string `json:"content"`
	Headliner    string `json:"headliner"`
	ShortContent string `json:"short_content"`
	QuotePostID  uint   `json:"quote_post_id"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:     actorID(c),
		Content:      req.Content,
		Headliner:    req.Headliner,
		ShortContent: req.ShortContent,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	parentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.postService.CreateComment(c.Context(), service.CreateCommentInput{
		AuthorID:     actorID(c),
		ParentPostID: parentID,
		Content:      req.Content,
		Headliner:    req.Headliner,
		ShortContent: req.ShortContent,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// CreateQuote handles POST /api/posts/quote
func (s *Server) CreateQuote(c *fiber.Ctx) error {
	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.QuotePostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("quote_post_id is required"))
	}

	quote, err := s.postService.CreateQuote(c.Context(), service.CreateQuoteInput{
		AuthorID:     actorID(c),
		QuotePostID:  req.QuotePostID,
		Content:      req.Content,
		Headliner:    req.Headliner,
		ShortContent: req.ShortContent,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// ToggleRepost handles POST /api/posts/:id/repost
func (s *Server) ToggleRepost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.postService.ToggleRepost(c.Context(), actorID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.ToggleOperations.WithLabelValues("repost", toggleState(res.Active)).Inc()

	return c.JSON(fiber.Map{
		"reposted": res.Active,
		"post":     res.Post,
	})
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.postService.ToggleLike(c.Context(), actorID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.ToggleOperations.WithLabelValues("like", toggleState(res.Active)).Inc()

	return c.JSON(fiber.Map{
		"liked": res.Active,
		"post":  res.Post,
	})
}

// GetUserReplies handles GET /api/posts/replies?userId=N
func (s *Server) GetUserReplies(c *fiber.Ctx) error {
	return s.listByAuthor(c, s.postService.GetUserReplies)
}

// GetUserQuotes handles GET /api/posts/quotes?userId=N
func (s *Server) GetUserQuotes(c *fiber.Ctx) error {
	return s.listByAuthor(c, s.postService.GetUserQuotes)
}

// GetUserReposts handles GET /api/posts/reposts?userId=N
func (s *Server) GetUserReposts(c *fiber.Ctx) error {
	return s.listByAuthor(c, s.postService.GetUserReposts)
}

// listByAuthor serves the profile tab listings, which only differ in which
// reference column they filter on.
func (s *Server) listByAuthor(c *fiber.Ctx, list func(ctx context.Context, userID uint) ([]*models.Post, error)) error {
	userID := c.QueryInt("userId", 0)
	if userID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	posts, err := list(c.Context(), uint(userID))
	if err != nil {
		return respondServiceError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return c.JSON(fiber.Map{"posts": posts})
}
