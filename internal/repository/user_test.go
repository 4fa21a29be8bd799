package repository

import (
	"context"
	"regexp"
	"testing"

	"chirp/internal/cache"
	"chirp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        uint
		mockBehavior  func()
		expectedUser  *models.User
		expectedError bool
	}{
		{
			name:   "Success",
			userID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "username", "email"}).
					AddRow(1, "testuser", "test@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			expectedUser: &models.User{ID: 1, Username: "testuser", Email: "test@example.com"},
		},
		{
			name:   "Not Found",
			userID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(99, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			user, err := repo.GetByID(ctx, tt.userID)

			if tt.expectedError {
				require.Error(t, err)
				appErr, ok := err.(*models.AppError)
				require.True(t, ok)
				assert.Equal(t, "NOT_FOUND", appErr.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser.Username, user.Username)
				assert.Equal(t, tt.expectedUser.Email, user.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername_MissingReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
		WithArgs("ghost", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	user, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// GetByID serves cached copies whose password was redacted by the JSON
// round trip. Saving such a copy back must leave the stored hash alone,
// and PasswordHash must return the real hash regardless of the cache.
func TestUserRepository_Update_KeepsPasswordOfCachedUser(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	prev := cache.GetClient()
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(prev) })

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Username: "alice", Email: "alice@example.com", Password: string(hashed)}
	require.NoError(t, repo.Create(ctx, user))

	// First read fills the cache, second is a cache hit without the password.
	_, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, cached.Password)

	cached.Bio = "now with a bio"
	require.NoError(t, repo.Update(ctx, cached))

	var stored models.User
	require.NoError(t, db.Select("password", "bio").First(&stored, user.ID).Error)
	assert.Equal(t, string(hashed), stored.Password, "profile update must not wipe the stored password hash")
	assert.Equal(t, "now with a bio", stored.Bio)

	hash, err := repo.PasswordHash(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, string(hashed), hash)

	// A rotation carries the new hash through.
	rotated, err := bcrypt.GenerateFromPassword([]byte("NewPassword456!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	cached.Password = string(rotated)
	require.NoError(t, repo.Update(ctx, cached))
	hash, err = repo.PasswordHash(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, string(rotated), hash)
}

func TestUserRepository_Create_DuplicateIsValidationError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Username: "taken", Email: "taken@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, first))

	dup := &models.User{Username: "taken", Email: "other@example.com", Password: "x"}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
