package notifications

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PublishUser_NilClientIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	assert.NoError(t, n.PublishUser(context.Background(), 1, "test payload"))
	assert.NoError(t, n.PublishEvent(context.Background(), 1, Event{Type: "like"}))
	assert.NoError(t, n.PublishBroadcast(context.Background(), "test payload"))
}

func TestUserChannel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		userID   uint
		expected string
	}{
		{1, "notifications:user:1"},
		{100, "notifications:user:100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, UserChannel(tt.userID))
	}
}

func TestNotifier_PublishEventReachesSubscriber(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 2)
	require.NoError(t, n.StartPatternSubscriber(ctx, func(_ string, payload string) {
		payloads <- payload
	}))

	require.NoError(t, n.PublishEvent(context.Background(), 42, Event{
		Type: "like", FromID: 7, PostID: 99,
	}))

	select {
	case payload := <-payloads:
		var event Event
		require.NoError(t, json.Unmarshal([]byte(payload), &event))
		assert.Equal(t, "like", event.Type)
		assert.Equal(t, uint(7), event.FromID)
		assert.Equal(t, uint(99), event.PostID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestNotifier_SubscriberStopsOnCancel(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())

	var received int32
	require.NoError(t, n.StartPatternSubscriber(ctx, func(_, _ string) {
		atomic.AddInt32(&received, 1)
	}))

	require.NoError(t, n.PublishUser(context.Background(), 1, "before-cancel"))
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&received) >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, n.PublishUser(context.Background(), 1, "after-cancel"))
	assert.Never(t, func() bool {
		return atomic.LoadInt32(&received) >= 2
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func TestHub_RegisterLimits(t *testing.T) {
	hub := NewHub()

	for i := 0; i < maxConnsPerUser; i++ {
		_, err := hub.Register(1, nil)
		require.NoError(t, err)
	}
	_, err := hub.Register(1, nil)
	assert.Error(t, err)

	// other users are unaffected
	_, err = hub.Register(2, nil)
	assert.NoError(t, err)
	assert.Equal(t, maxConnsPerUser+1, hub.ConnectionCount())
}

func TestHub_BroadcastTargetsUser(t *testing.T) {
	hub := NewHub()

	alice, err := hub.Register(1, nil)
	require.NoError(t, err)
	bob, err := hub.Register(2, nil)
	require.NoError(t, err)

	hub.Broadcast(1, `{"type":"like"}`)

	select {
	case msg := <-alice.Send:
		assert.Equal(t, `{"type":"like"}`, string(msg))
	default:
		t.Fatal("expected a message for alice")
	}
	select {
	case <-bob.Send:
		t.Fatal("bob should not receive alice's notification")
	default:
	}
}

func TestHub_UnregisterRemovesClient(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(1, nil)
	require.NoError(t, err)
	assert.True(t, hub.IsOnline(1))

	hub.UnregisterClient(client)
	assert.False(t, hub.IsOnline(1))
	assert.Equal(t, 0, hub.ConnectionCount())
}
