package service

import (
	"context"

	"chirp/internal/models"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint, uint) (*models.Post, error)
	listNewestFn      func(context.Context, int, int, uint) ([]*models.Post, error)
	listByUserIDFn    func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listByAuthorsFn   func(context.Context, []uint, int, int, uint) ([]*models.Post, error)
	listLikedFn       func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	deleteFn          func(context.Context, uint) error
	toggleLikeFn      func(context.Context, uint, uint) (bool, error)
	getLikedPostIDsFn func(context.Context, uint, []uint) ([]uint, error)
	addCommentFn      func(context.Context, *models.Comment) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) ListNewest(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listNewestFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByAuthorIDs(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset, currentUserID)
}
func (s *postRepoStub) ListLikedByUser(ctx context.Context, likerID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listLikedFn(ctx, likerID, limit, offset, currentUserID)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.toggleLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	return s.getLikedPostIDsFn(ctx, userID, postIDs)
}
func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:         func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listNewestFn:      func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listByUserIDFn:    func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listByAuthorsFn:   func(_ context.Context, _ []uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listLikedFn:       func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		toggleLikeFn:      func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		getLikedPostIDsFn: func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
		addCommentFn:      func(_ context.Context, _ *models.Comment) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	passwordHashFn  func(context.Context, uint) (string, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) PasswordHash(ctx context.Context, id uint) (string, error) {
	return s.passwordHashFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		passwordHashFn:  func(_ context.Context, _ uint) (string, error) { return "", nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	toggleFn       func(context.Context, uint, uint) (bool, error)
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
	countsFn       func(context.Context, uint) (int64, int64, error)
	suggestedFn    func(context.Context, uint, int) ([]models.User, error)
}

func (s *followRepoStub) Toggle(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.toggleFn(ctx, followerID, followedID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, followerID)
}
func (s *followRepoStub) Counts(ctx context.Context, userID uint) (int64, int64, error) {
	return s.countsFn(ctx, userID)
}
func (s *followRepoStub) Suggested(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.suggestedFn(ctx, userID, limit)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		toggleFn:       func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		isFollowingFn:  func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followingIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		countsFn:       func(_ context.Context, _ uint) (int64, int64, error) { return 0, 0, nil },
		suggestedFn:    func(_ context.Context, _ uint, _ int) ([]models.User, error) { return nil, nil },
	}
}

// notifRepoStub is a stub for repository.NotificationRepository.
type notifRepoStub struct {
	createFn        func(context.Context, *models.Notification) error
	listForUserFn   func(context.Context, uint) ([]*models.Notification, error)
	deleteForUserFn func(context.Context, uint) error
}

func (s *notifRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notifRepoStub) ListForUser(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *notifRepoStub) DeleteForUser(ctx context.Context, userID uint) error {
	return s.deleteForUserFn(ctx, userID)
}

func noopNotifRepo() *notifRepoStub {
	return &notifRepoStub{
		createFn:        func(_ context.Context, _ *models.Notification) error { return nil },
		listForUserFn:   func(_ context.Context, _ uint) ([]*models.Notification, error) { return nil, nil },
		deleteForUserFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// storeStub is a stub for media.Store.
type storeStub struct {
	uploadFn func(context.Context, string) (string, error)
	deleteFn func(context.Context, string) error
}

func (s *storeStub) Upload(ctx context.Context, payload string) (string, error) {
	return s.uploadFn(ctx, payload)
}
func (s *storeStub) Delete(ctx context.Context, publicID string) error {
	return s.deleteFn(ctx, publicID)
}

func noopStore() *storeStub {
	return &storeStub{
		uploadFn: func(_ context.Context, _ string) (string, error) {
			return "https://cdn.example.com/media/uploaded.jpg", nil
		},
		deleteFn: func(_ context.Context, _ string) error { return nil },
	}
}
