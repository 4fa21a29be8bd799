// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"chirp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded user gets.
const DefaultPassword = "Password123!"

// Options controls how much data the seeder creates.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Tables are cleared children-first so
// foreign keys never block the delete.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Notification{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	return nil
}

// Run populates the database according to opts.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("seeded %d users", len(users))

	posts, err := s.CreatePosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	log.Printf("seeded %d posts", len(posts))

	if err := s.CreateEngagement(users, posts); err != nil {
		return fmt.Errorf("seed engagement: %w", err)
	}
	log.Printf("seeded engagement for %d users", len(users))
	return nil
}

// CreateUsers persists n users with generated profiles. Every user gets
// DefaultPassword so seeded accounts are usable for manual testing.
func (s *Seeder) CreateUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username:   fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:      gofakeit.Email(),
			Password:   string(hashed),
			Bio:        gofakeit.Sentence(10),
			Link:       gofakeit.URL(),
			ProfileImg: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
			CoverImg:   fmt.Sprintf("https://picsum.photos/seed/%s/1200/400", gofakeit.UUID()),
		}
		users = append(users, user)
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreatePosts persists n posts spread across the given users with
// realistic created_at scatter over the last 90 days.
func (s *Seeder) CreatePosts(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attach posts to")
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		post := &models.Post{
			UserID:    author.ID,
			Text:      gofakeit.Paragraph(1, 3, 8, "\n"),
			CreatedAt: s.backdate(90),
		}
		// Roughly a third of posts carry an image.
		if s.rand.Intn(3) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		}
		posts = append(posts, post)
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateEngagement wires follows, likes, comments, and the notifications
// those actions would have produced.
func (s *Seeder) CreateEngagement(users []*models.User, posts []*models.Post) error {
	if len(users) < 2 || len(posts) == 0 {
		return nil
	}

	var notifications []*models.Notification

	// Each user follows a handful of others.
	seen := map[[2]uint]bool{}
	var follows []*models.Follow
	for _, user := range users {
		count := 1 + s.rand.Intn(5)
		for j := 0; j < count; j++ {
			target := users[s.rand.Intn(len(users))]
			key := [2]uint{user.ID, target.ID}
			if target.ID == user.ID || seen[key] {
				continue
			}
			seen[key] = true
			follows = append(follows, &models.Follow{
				FollowerID: user.ID,
				FollowedID: target.ID,
			})
			notifications = append(notifications, &models.Notification{
				FromID: user.ID,
				ToID:   target.ID,
				Type:   models.NotificationTypeFollow,
				Read:   s.rand.Intn(2) == 0,
			})
		}
	}
	if len(follows) > 0 {
		if err := s.db.Create(&follows).Error; err != nil {
			return err
		}
	}

	// Scatter likes and comments over the posts.
	likedBy := map[[2]uint]bool{}
	var likes []*models.Like
	var comments []*models.Comment
	for _, post := range posts {
		for j := 0; j < s.rand.Intn(6); j++ {
			fan := users[s.rand.Intn(len(users))]
			key := [2]uint{fan.ID, post.ID}
			if likedBy[key] {
				continue
			}
			likedBy[key] = true
			likes = append(likes, &models.Like{UserID: fan.ID, PostID: post.ID})
			if fan.ID != post.UserID {
				notifications = append(notifications, &models.Notification{
					FromID: fan.ID,
					ToID:   post.UserID,
					Type:   models.NotificationTypeLike,
					Read:   s.rand.Intn(2) == 0,
				})
			}
		}
		for j := 0; j < s.rand.Intn(3); j++ {
			commenter := users[s.rand.Intn(len(users))]
			comments = append(comments, &models.Comment{
				UserID: commenter.ID,
				PostID: post.ID,
				Text:   gofakeit.Sentence(8),
			})
		}
	}
	if len(likes) > 0 {
		if err := s.db.Create(&likes).Error; err != nil {
			return err
		}
	}
	if len(comments) > 0 {
		if err := s.db.Create(&comments).Error; err != nil {
			return err
		}
	}
	if len(notifications) > 0 {
		if err := s.db.Create(&notifications).Error; err != nil {
			return err
		}
	}
	return nil
}

// backdate returns a random timestamp up to maxDays in the past.
func (s *Seeder) backdate(maxDays int) time.Time {
	daysBack := s.rand.Intn(maxDays)
	hoursBack := s.rand.Intn(24)
	minsBack := s.rand.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}
