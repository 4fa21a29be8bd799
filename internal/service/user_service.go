package service

import (
	"context"
	"log/slog"
	"strings"

	"chirp/internal/media"
	"chirp/internal/models"
	"chirp/internal/notifications"
	"chirp/internal/repository"
	"chirp/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	notifRepo  repository.NotificationRepository
	store      media.Store
	pipeline   *media.Pipeline
	notifier   *notifications.Notifier
}

// Profile is a user together with their follow counts.
type Profile struct {
	User      *models.User `json:"user"`
	Followers int64        `json:"followers"`
	Following int64        `json:"following"`
}

type UpdateProfileInput struct {
	UserID          uint
	Username        string
	Email           string
	Bio             string
	Link            string
	ProfileImg      string
	CoverImg        string
	CurrentPassword string
	NewPassword     string
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	notifRepo repository.NotificationRepository,
	store media.Store,
	pipeline *media.Pipeline,
	notifier *notifications.Notifier,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		notifRepo:  notifRepo,
		store:      store,
		pipeline:   pipeline,
		notifier:   notifier,
	}
}

// ToggleFollow flips the caller's follow edge toward targetID and reports
// whether the caller follows the target after the call. Starting to follow
// someone notifies them; unfollowing leaves old notifications in place.
func (s *UserService) ToggleFollow(ctx context.Context, userID, targetID uint) (bool, error) {
	if userID == targetID {
		return false, models.NewValidationError("You can't follow or unfollow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	following, err := s.followRepo.Toggle(ctx, userID, targetID)
	if err != nil {
		return false, err
	}

	if following {
		notification := &models.Notification{
			FromID: userID,
			ToID:   targetID,
			Type:   models.NotificationTypeFollow,
		}
		if err := s.notifRepo.Create(ctx, notification); err != nil {
			slog.WarnContext(ctx, "failed to persist follow notification",
				"to_id", targetID, "error", err)
		} else if s.notifier != nil {
			if err := s.notifier.PublishEvent(ctx, targetID, notifications.Event{
				Type:   models.NotificationTypeFollow,
				FromID: userID,
			}); err != nil {
				slog.WarnContext(ctx, "failed to publish follow notification",
					"to_id", targetID, "error", err)
			}
		}
	}
	return following, nil
}

// GetProfile returns the named user with their follow counts.
func (s *UserService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	followers, following, err := s.followRepo.Counts(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Followers: followers, Following: following}, nil
}

// SuggestedUsers returns a small sample of users the caller does not follow.
func (s *UserService) SuggestedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.Suggested(ctx, userID, 4)
}

// UpdateProfile applies partial updates to the caller's own profile.
// Changing the password requires both the current and the new password.
// New profile or cover images are pushed through the media pipeline; the
// replaced image is removed from the store best-effort.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if (in.CurrentPassword == "") != (in.NewPassword == "") {
		return nil, models.NewValidationError("Please provide both current password and new password")
	}
	// GetByID may have served a cached copy with the password redacted,
	// so leave it empty unless this update rotates it. Update skips the
	// password column when it is empty.
	user.Password = ""
	if in.NewPassword != "" {
		hash, err := s.userRepo.PasswordHash(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.CurrentPassword)); err != nil {
			return nil, models.NewValidationError("Current password is incorrect")
		}
		if err := validation.ValidatePassword(in.NewPassword); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if username := strings.TrimSpace(in.Username); username != "" && username != user.Username {
		if err := validation.ValidateUsername(username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = username
	}
	if email := strings.TrimSpace(in.Email); email != "" && email != user.Email {
		if err := validation.ValidateEmail(email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = email
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if in.Link != "" {
		user.Link = in.Link
	}

	if in.ProfileImg != "" {
		uploaded, err := s.replaceImage(ctx, user.ProfileImg, in.ProfileImg)
		if err != nil {
			return nil, err
		}
		user.ProfileImg = uploaded
	}
	if in.CoverImg != "" {
		uploaded, err := s.replaceImage(ctx, user.CoverImg, in.CoverImg)
		if err != nil {
			return nil, err
		}
		user.CoverImg = uploaded
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) replaceImage(ctx context.Context, oldURL, payload string) (string, error) {
	normalized, err := s.pipeline.Normalize(payload)
	if err != nil {
		return "", models.NewValidationError(err.Error())
	}
	uploaded, err := s.store.Upload(ctx, normalized)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	if oldURL != "" {
		if publicID := media.PublicIDFromURL(oldURL); publicID != "" {
			if err := s.store.Delete(ctx, publicID); err != nil {
				slog.WarnContext(ctx, "failed to delete replaced image from media store",
					"public_id", publicID, "error", err)
			}
		}
	}
	return uploaded, nil
}
