package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Toggle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	following, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	isFollowing, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, isFollowing)

	// the edge is directed
	isFollowing, err = repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)

	following, err = repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	isFollowing, err = repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)
}

func TestFollowRepository_FollowingIDsAndCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	_, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, carol.ID, bob.ID)
	require.NoError(t, err)

	ids, err := repo.FollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)

	followers, following, err := repo.Counts(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)
	assert.Equal(t, int64(0), following)
}

func TestFollowRepository_Suggested(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	dave := createTestUser(t, db, "dave")

	_, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	suggested, err := repo.Suggested(ctx, alice.ID, 10)
	require.NoError(t, err)

	ids := make([]uint, 0, len(suggested))
	for _, u := range suggested {
		ids = append(ids, u.ID)
	}
	// never the requester, never someone already followed
	assert.ElementsMatch(t, []uint{carol.ID, dave.ID}, ids)
}
