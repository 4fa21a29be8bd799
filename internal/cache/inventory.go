package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	PostKeyPrefix     = "post:%d"
	GlobalFeedKey     = "feed:global"
	UserFeedKeyPrefix = "feed:user:%d"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	FeedTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func UserFeedKey(userID uint) string {
	return fmt.Sprintf(UserFeedKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateFeeds drops the global feed and any per-user feeds for the given
// authors. Called on writes that change feed contents.
func InvalidateFeeds(ctx context.Context, authorIDs ...uint) {
	Invalidate(ctx, GlobalFeedKey)
	for _, id := range authorIDs {
		Invalidate(ctx, UserFeedKey(id))
	}
}
