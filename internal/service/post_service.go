// Package service contains the application's business logic.
package service

import (
	"context"
	"log/slog"
	"strings"

	"chirp/internal/cache"
	"chirp/internal/media"
	"chirp/internal/models"
	"chirp/internal/notifications"
	"chirp/internal/repository"
)

type PostService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	notifRepo  repository.NotificationRepository
	store      media.Store
	pipeline   *media.Pipeline
	notifier   *notifications.Notifier
}

type CreatePostInput struct {
	UserID uint
	Text   string
	Image  string
}

type CommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

type FeedInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	notifRepo repository.NotificationRepository,
	store media.Store,
	pipeline *media.Pipeline,
	notifier *notifications.Notifier,
) *PostService {
	return &PostService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		notifRepo:  notifRepo,
		store:      store,
		pipeline:   pipeline,
		notifier:   notifier,
	}
}

const (
	maxPostTextLen    = 5000
	maxCommentTextLen = 2000

	// feedCachePageSize is the only page size the shared global feed cache
	// stores. Other sizes bypass it so a short page can never be served to
	// a full-page request.
	feedCachePageSize = 20
)

// CreatePost stores a new post. When an image payload is present it is
// normalized and uploaded to the media store first; the post persists the
// store's durable URL, never the raw payload.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	image := strings.TrimSpace(in.Image)

	if text == "" && image == "" {
		return nil, models.NewValidationError("Post must have text or image")
	}
	if len(text) > maxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 5000 characters)")
	}

	imageURL := ""
	if image != "" {
		normalized, err := s.pipeline.Normalize(image)
		if err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		uploaded, err := s.store.Upload(ctx, normalized)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		imageURL = uploaded
	}

	post := &models.Post{
		Text:     text,
		ImageURL: imageURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// DeletePost removes a post owned by the caller. The stored image, if any,
// is deleted from the media store first, best-effort; the record is removed
// regardless of whether the store cooperated.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if post.ImageURL != "" {
		publicID := media.PublicIDFromURL(post.ImageURL)
		if publicID != "" {
			if err := s.store.Delete(ctx, publicID); err != nil {
				slog.WarnContext(ctx, "failed to delete post image from media store",
					"post_id", postID, "public_id", publicID, "error", err)
			}
		}
	}

	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's like on a post and returns the refreshed
// post. Liking someone else's post creates a notification; unliking leaves
// any previous notification in place.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if liked && post.UserID != userID {
		s.notify(ctx, userID, post.UserID, models.NotificationTypeLike, postID)
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}

// CommentOnPost appends a comment and returns the refreshed post.
func (s *PostService) CommentOnPost(ctx context.Context, in CommentInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text field is required")
	}
	if len(text) > maxCommentTextLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		UserID: in.UserID,
		PostID: in.PostID,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

// GlobalFeed returns all posts newest-first. The first page is served from
// a shared cache and re-enriched with the caller's liked flags.
func (s *PostService) GlobalFeed(ctx context.Context, in FeedInput) ([]*models.Post, error) {
	var posts []*models.Post

	if in.Offset == 0 && in.Limit == feedCachePageSize {
		err := cache.Aside(ctx, cache.GlobalFeedKey, &posts, cache.FeedTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.ListNewest(ctx, in.Limit, in.Offset, 0)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}

		if in.CurrentUserID != 0 && len(posts) > 0 {
			postIDs := make([]uint, len(posts))
			for i, p := range posts {
				postIDs[i] = p.ID
			}
			likedIDs, err := s.postRepo.GetLikedPostIDs(ctx, in.CurrentUserID, postIDs)
			if err == nil {
				likedMap := make(map[uint]bool, len(likedIDs))
				for _, id := range likedIDs {
					likedMap[id] = true
				}
				for _, p := range posts {
					p.Liked = likedMap[p.ID]
				}
			}
		}
		return posts, nil
	}

	return s.postRepo.ListNewest(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

// FollowingFeed returns posts authored by users the caller follows.
func (s *PostService) FollowingFeed(ctx context.Context, in FeedInput) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, in.CurrentUserID); err != nil {
		return nil, err
	}
	authorIDs, err := s.followRepo.FollowingIDs(ctx, in.CurrentUserID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListByAuthorIDs(ctx, authorIDs, in.Limit, in.Offset, in.CurrentUserID)
}

// LikedFeed returns the posts a given user has liked.
func (s *PostService) LikedFeed(ctx context.Context, targetUserID uint, in FeedInput) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikedByUser(ctx, targetUserID, in.Limit, in.Offset, in.CurrentUserID)
}

// UserFeed returns the posts authored by the named user.
func (s *PostService) UserFeed(ctx context.Context, username string, in FeedInput) ([]*models.Post, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return s.postRepo.ListByUserID(ctx, user.ID, in.Limit, in.Offset, in.CurrentUserID)
}

// GetPost returns a single post with author and comments expanded.
func (s *PostService) GetPost(ctx context.Context, postID, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, currentUserID)
}

// notify persists a notification and pushes it to the recipient's stream.
// Delivery failures are logged, never surfaced to the caller.
func (s *PostService) notify(ctx context.Context, fromID, toID uint, notifType string, postID uint) {
	notification := &models.Notification{
		FromID: fromID,
		ToID:   toID,
		Type:   notifType,
	}
	if err := s.notifRepo.Create(ctx, notification); err != nil {
		slog.WarnContext(ctx, "failed to persist notification",
			"type", notifType, "to_id", toID, "error", err)
		return
	}
	if s.notifier != nil {
		if err := s.notifier.PublishEvent(ctx, toID, notifications.Event{
			Type:   notifType,
			FromID: fromID,
			PostID: postID,
		}); err != nil {
			slog.WarnContext(ctx, "failed to publish notification",
				"type", notifType, "to_id", toID, "error", err)
		}
	}
}
