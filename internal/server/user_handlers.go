package server

import (
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FollowUnfollowUser handles POST /api/users/follow/:id
// @Summary Toggle follow
// @Description Follow a user, or unfollow if already following
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{following=bool}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/follow/{id} [post]
func (s *Server) FollowUnfollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.userService.ToggleFollow(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// GetUserProfile handles GET /api/users/profile/:username
// @Summary User profile
// @Description Fetch a user's profile with follower and following counts
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.Profile
// @Failure 404 {object} object{error=string}
// @Router /users/profile/{username} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	profile, err := s.userService.GetProfile(c.Context(), username)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(profile)
}

// GetSuggestedUsers handles GET /api/users/suggested
// @Summary Suggested users
// @Description List users the caller might want to follow
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users/suggested [get]
func (s *Server) GetSuggestedUsers(c *fiber.Ctx) error {
	users, err := s.userService.SuggestedUsers(c.Context(), currentUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(users)
}

// UpdateProfile handles POST /api/users/update
// @Summary Update profile
// @Description Update the caller's profile fields, images, or password
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,bio=string,link=string,profileImg=string,coverImg=string,currentPassword=string,newPassword=string} true "Profile changes"
// @Success 200 {object} models.User
// @Failure 400 {object} object{error=string}
// @Router /users/update [post]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Bio             string `json:"bio"`
		Link            string `json:"link"`
		ProfileImg      string `json:"profileImg"`
		CoverImg        string `json:"coverImg"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:          currentUserID(c),
		Username:        req.Username,
		Email:           req.Email,
		Bio:             req.Bio,
		Link:            req.Link,
		ProfileImg:      req.ProfileImg,
		CoverImg:        req.CoverImg,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(user)
}
