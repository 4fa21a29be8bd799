package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param string
		want  string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"postId", "post ID"},
		{"username", "username"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeParam(tt.param), tt.param)
	}
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/", func(c *fiber.Ctx) error {
		got = parsePagination(c, 20)
		return c.SendStatus(http.StatusOK)
	})

	tests := []struct {
		name   string
		query  string
		limit  int
		offset int
	}{
		{"Defaults", "", 20, 0},
		{"Explicit", "?limit=5&offset=10", 5, 10},
		{"CappedLimit", "?limit=9999", 100, 0},
		{"NegativeValues", "?limit=-1&offset=-5", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.limit, got.Limit)
			assert.Equal(t, tt.offset, got.Offset)
		})
	}
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"Unauthorized", models.NewUnauthorizedError("no"), http.StatusUnauthorized},
		{"Forbidden", models.NewForbiddenError("not yours"), http.StatusForbidden},
		{"NotFound", models.NewNotFoundError("Post", 1), http.StatusNotFound},
		{"GormNotFound", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return mapServiceError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestParseID(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		path   string
		status int
	}{
		{"/things/7", http.StatusOK},
		{"/things/0", http.StatusBadRequest},
		{"/things/-3", http.StatusBadRequest},
		{"/things/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, tt.status, resp.StatusCode, tt.path)
	}
}
