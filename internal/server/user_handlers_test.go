package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"glimpse/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestGetUserProfile_IncludesCounts(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")
	seedPost(t, db, author.ID, "one")
	seedPost(t, db, author.ID, "two")
	if err := db.Create(&models.Follow{FollowerID: fan.ID, FollowingID: author.ID}).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}

	app := fiber.New()
	app.Get("/users/:id", s.GetUserProfile)

	_, body := getJSON(t, app, fmt.Sprintf("/users/%d", author.ID))
	if body["posts_count"].(float64) != 2 {
		t.Fatalf("expected 2 posts, got %v", body["posts_count"])
	}
	if body["followers_count"].(float64) != 1 {
		t.Fatalf("expected 1 follower, got %v", body["followers_count"])
	}
	if body["is_following"] != false {
		t.Fatalf("anonymous viewer should not be following, got %v", body["is_following"])
	}
}

func TestGetUserProfile_ViewerFollowState(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	if err := db.Create(&models.Follow{FollowerID: viewer.ID, FollowingID: author.ID}).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}

	app := authedApp(s, viewer.ID, func(app *fiber.App) {
		app.Get("/users/:id", s.GetUserProfile)
	})

	_, body := getJSON(t, app, fmt.Sprintf("/users/%d", author.ID))
	if body["is_following"] != true {
		t.Fatalf("expected is_following=true for a following viewer, got %v", body["is_following"])
	}
}

func TestGetUserProfile_MissingIs404(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	app := fiber.New()
	app.Get("/users/:id", s.GetUserProfile)

	req := httptest.NewRequest(http.MethodGet, "/users/404", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetUserByHandle_ResolvesProfile(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	user := seedUser(t, db, "findme")
	seedPost(t, db, user.ID, "hello")

	app := fiber.New()
	app.Get("/users/handle/:handle", s.GetUserByHandle)

	_, body := getJSON(t, app, "/users/handle/findme")
	if uint(body["id"].(float64)) != user.ID {
		t.Fatalf("expected user %d, got %v", user.ID, body["id"])
	}
	if body["posts_count"].(float64) != 1 {
		t.Fatalf("expected posts_count 1, got %v", body["posts_count"])
	}

	resp, _ := getJSON(t, app, "/users/handle/ghost")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown handle, got %d", resp.StatusCode)
	}
}

func TestUpdateMyProfile_PersistsChanges(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	user := seedUser(t, db, "editable")

	app := authedApp(s, user.ID, func(app *fiber.App) {
		app.Put("/users/me", s.UpdateMyProfile)
	})

	b := map[string]any{
		"name":        "New Name",
		"handle":      "fresh_handle",
		"x_username":  "newx",
		"website_url": "https://example.com",
	}
	req := httptest.NewRequest(http.MethodPut, "/users/me", jsonReader(t, b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["handle"] != "fresh_handle" {
		t.Fatalf("expected updated handle, got %v", body["handle"])
	}

	var saved models.User
	if err := db.First(&saved, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if saved.Name != "New Name" || saved.Handle != "fresh_handle" || saved.XUsername != "newx" {
		t.Fatalf("profile changes not persisted: %+v", saved)
	}
}

func TestUpdateMyProfile_RejectsBadHandle(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	user := seedUser(t, db, "editable")

	app := authedApp(s, user.ID, func(app *fiber.App) {
		app.Put("/users/me", s.UpdateMyProfile)
	})

	req := httptest.NewRequest(http.MethodPut, "/users/me",
		jsonReader(t, map[string]any{"handle": "has spaces!"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateMyProfile_RejectsTakenHandle(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	user := seedUser(t, db, "editable")
	seedUser(t, db, "occupied")

	app := authedApp(s, user.ID, func(app *fiber.App) {
		app.Put("/users/me", s.UpdateMyProfile)
	})

	req := httptest.NewRequest(http.MethodPut, "/users/me",
		jsonReader(t, map[string]any{"handle": "occupied"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a taken handle, got %d", resp.StatusCode)
	}
}

func TestGetMyProfile_RequiresAuth(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	app := authedApp(s, 0, func(app *fiber.App) {
		app.Get("/users/me", s.GetMyProfile)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
