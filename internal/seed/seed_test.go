package seed

import (
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
	))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{NumUsers: 10, NumPosts: 30, ShouldClean: true}))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Equal(t, int64(10), userCount)
	assert.Equal(t, int64(30), postCount)

	// No self-follows and no duplicate follow edges
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = followed_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)

	// Seeded users can log in with the default password
	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.Password), []byte(DefaultPassword)))
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{NumUsers: 5, NumPosts: 10}))
	require.NoError(t, s.ClearAll())

	for _, model := range []any{
		&models.User{}, &models.Post{}, &models.Like{},
		&models.Follow{}, &models.Comment{}, &models.Notification{},
	} {
		var count int64
		require.NoError(t, db.Unscoped().Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T not cleared", model)
	}
}

func TestCreatePostsRequiresUsers(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	_, err := s.CreatePosts(nil, 5)
	assert.Error(t, err)
}
