package server

import (
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultFeedLimit = 20

// CreatePost handles POST /api/posts
// @Summary Create post
// @Description Create a new post with text and/or an image
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{text=string,img=string} true "Post content"
// @Success 201 {object} models.Post
// @Failure 400 {object} object{error=string}
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
		Img  string `json:"img"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID: currentUserID(c),
		Text:   req.Text,
		Image:  req.Img,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
// @Summary Get post
// @Description Fetch a single post with comments and like details
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} object{error=string}
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID, currentUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete post
// @Description Delete one of the caller's posts
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), postID); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// LikeUnlikePost handles POST /api/posts/:id/like
// @Summary Toggle like
// @Description Like a post, or remove an existing like
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} object{error=string}
// @Router /posts/{id}/like [post]
func (s *Server) LikeUnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.ToggleLike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(post)
}

// CommentOnPost handles POST /api/posts/:id/comment
// @Summary Comment on post
// @Description Add a comment to a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body object{text=string} true "Comment text"
// @Success 200 {object} models.Post
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /posts/{id}/comment [post]
func (s *Server) CommentOnPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CommentOnPost(c.Context(), service.CommentInput{
		UserID: currentUserID(c),
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(post)
}

// GetPosts handles GET /api/posts
// @Summary Global feed
// @Description List all posts, newest first
// @Tags posts
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, defaultFeedLimit)
	posts, err := s.postService.GlobalFeed(c.Context(), service.FeedInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetFollowingPosts handles GET /api/posts/following
// @Summary Following feed
// @Description List posts authored by users the caller follows
// @Tags posts
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Post
// @Router /posts/following [get]
func (s *Server) GetFollowingPosts(c *fiber.Ctx) error {
	p := parsePagination(c, defaultFeedLimit)
	posts, err := s.postService.FollowingFeed(c.Context(), service.FeedInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetLikedPosts handles GET /api/posts/liked/:id
// @Summary Liked feed
// @Description List posts liked by the given user
// @Tags posts
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Post
// @Failure 404 {object} object{error=string}
// @Router /posts/liked/{id} [get]
func (s *Server) GetLikedPosts(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, defaultFeedLimit)
	posts, err := s.postService.LikedFeed(c.Context(), targetID, service.FeedInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetUserPosts handles GET /api/posts/user/:username
// @Summary User feed
// @Description List posts authored by the given user
// @Tags posts
// @Produce json
// @Param username path string true "Username"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Post
// @Failure 404 {object} object{error=string}
// @Router /posts/user/{username} [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	p := parsePagination(c, defaultFeedLimit)
	posts, err := s.postService.UserFeed(c.Context(), username, service.FeedInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(posts)
}
