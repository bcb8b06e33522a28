package server

import (
	"context"
	"net/http"
	"testing"

	"portfolio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_RequiresToken(t *testing.T) {
	e := newTestEnv(t)

	paths := []string{"/admin/skills", "/admin/posts", "/admin/messages", "/admin/site-settings"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp := e.do(t, http.MethodGet, path, nil, "")
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}

	resp := e.do(t, http.MethodGet, "/admin/skills", nil, "not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminLogin(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/admin/login", map[string]string{
		"username": testOperator,
		"password": "wrong",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/admin/login", map[string]string{
		"username": testOperator,
		"password": testPassword,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	assert.NotEmpty(t, body.ExpiresAt)

	// The issued token opens the admin surface.
	resp = e.do(t, http.MethodGet, "/admin/skills", nil, body.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminSkills_CRUDAndReset(t *testing.T) {
	e := newTestEnv(t)
	token := operatorToken(t)

	resp := e.do(t, http.MethodPost, "/admin/skills", map[string]interface{}{
		"name": "Welding", "level": 150, "category": "ENG",
	}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var verr models.ErrorResponse
	decode(t, resp, &verr)
	assert.Contains(t, verr.Fields, "level")

	resp = e.do(t, http.MethodPost, "/admin/skills", map[string]interface{}{
		"name": "Welding", "level": 80, "category": "ENG",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Skill
	decode(t, resp, &created)
	require.NotZero(t, created.ID)

	resp = e.do(t, http.MethodPost, "/admin/skills/reset-levels", map[string]interface{}{
		"ids": []uint{created.ID},
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var reset map[string]float64
	decode(t, resp, &reset)
	assert.Equal(t, float64(1), reset["updated"])

	resp = e.do(t, http.MethodGet, "/admin/skills/"+itoa(created.ID), nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var fetched models.Skill
	decode(t, resp, &fetched)
	assert.Equal(t, models.ResetSkillLevel, fetched.Level)

	resp = e.do(t, http.MethodPost, "/admin/skills/reset-levels", map[string]interface{}{"ids": []uint{}}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = e.do(t, http.MethodDelete, "/admin/skills/"+itoa(created.ID), nil, token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/admin/skills/"+itoa(created.ID), nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/admin/skills/abc", nil, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminProjects_DuplicateSlugConflicts(t *testing.T) {
	e := newTestEnv(t)
	token := operatorToken(t)

	project := map[string]interface{}{
		"title":             "Water Pump",
		"short_description": "A hand pump redesign",
		"technologies":      "CAD",
	}
	resp := e.do(t, http.MethodPost, "/admin/projects", project, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Project
	decode(t, resp, &created)
	assert.Equal(t, "water-pump", created.Slug)

	project["slug"] = "water-pump"
	resp = e.do(t, http.MethodPost, "/admin/projects", project, token)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/admin/projects/"+itoa(created.ID)+"/images", map[string]string{
		"image": "projects/gallery/pump.jpg", "caption": "Prototype",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/project/water-pump", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detail struct {
		Images []map[string]string `json:"images"`
	}
	decode(t, resp, &detail)
	require.Len(t, detail.Images, 1)
	assert.Equal(t, "Prototype", detail.Images[0]["caption"])
}

func TestAdminPosts_PreviewDraft(t *testing.T) {
	e := newTestEnv(t)
	token := operatorToken(t)

	resp := e.do(t, http.MethodPost, "/admin/posts", map[string]interface{}{
		"title":            "Notes On Gearboxes",
		"markdown_content": "## Ratios\n\nSome **bold** claims.",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Post
	decode(t, resp, &created)
	assert.Equal(t, "notes-on-gearboxes", created.Slug)
	assert.Equal(t, e.cfg.DefaultPostAuthor, created.Author)
	assert.False(t, created.IsPublished)

	// Drafts stay hidden from the public blog but render for the operator.
	resp = e.do(t, http.MethodGet, "/blog/notes-on-gearboxes", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/admin/posts/slug/notes-on-gearboxes", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var preview struct {
		Content string `json:"post_content"`
	}
	decode(t, resp, &preview)
	assert.Contains(t, preview.Content, "<strong>bold</strong>")

	resp = e.do(t, http.MethodPut, "/admin/posts/"+itoa(created.ID), map[string]interface{}{
		"title":            "Notes On Gearboxes",
		"markdown_content": "## Ratios\n\nSome **bold** claims.",
		"is_published":     true,
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/blog/notes-on-gearboxes", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminMessages_MarkRead(t *testing.T) {
	e := newTestEnv(t)
	token := operatorToken(t)
	ctx := context.Background()

	msgs := []models.ContactMessage{
		{Name: "A", Email: "a@example.com", Message: "first message body"},
		{Name: "B", Email: "b@example.com", Message: "second message body"},
	}
	require.NoError(t, e.db.WithContext(ctx).Create(&msgs).Error)

	resp := e.do(t, http.MethodGet, "/admin/messages", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list struct {
		Messages []map[string]interface{} `json:"messages"`
		Unread   float64                  `json:"unread"`
	}
	decode(t, resp, &list)
	assert.Len(t, list.Messages, 2)
	assert.Equal(t, float64(2), list.Unread)

	resp = e.do(t, http.MethodPost, "/admin/messages/mark-read", map[string]interface{}{
		"ids": []uint{msgs[0].ID},
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/admin/messages", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &list)
	assert.Equal(t, float64(1), list.Unread)

	resp = e.do(t, http.MethodDelete, "/admin/messages/"+itoa(msgs[1].ID), nil, token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAdminSiteSettings_Singleton(t *testing.T) {
	e := newTestEnv(t)
	token := operatorToken(t)

	resp := e.do(t, http.MethodGet, "/admin/site-settings", nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/admin/site-settings", map[string]string{}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/admin/site-settings", map[string]string{}, token)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var home map[string]interface{}
	decode(t, resp, &home)
	assert.NotNil(t, home["site_settings"])
}
