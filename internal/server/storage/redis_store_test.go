package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func sampleRoom() *RoomData {
	return &RoomData{
		Code:  "tbl1",
		State: 0,
		Players: []PlayerData{
			{ID: "p1", Name: "Ana", Team: 1, Online: true},
			{ID: "p2", Name: "Bob", Team: 2, Online: false},
		},
		PlayerOrder: []string{"p1", "p2"},
		Chat: []ChatEntry{
			{Author: "Ana", Text: "hello", Timestamp: "14:03"},
		},
		CreatedAt: time.Now().Unix(),
	}
}

func TestRoomRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "tbl1", sampleRoom()))

	loaded, err := store.LoadRoom(ctx, "tbl1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tbl1", loaded.Code)
	require.Len(t, loaded.Players, 2)
	assert.Equal(t, "Ana", loaded.Players[0].Name)
	assert.False(t, loaded.Players[1].Online)
	assert.Equal(t, []string{"p1", "p2"}, loaded.PlayerOrder)
	require.Len(t, loaded.Chat, 1)
	assert.Equal(t, "14:03", loaded.Chat[0].Timestamp)
}

func TestLoadRoomMissing(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.LoadRoom(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSaveRoomNilIsNoop(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.SaveRoom(context.Background(), "tbl1", nil))
	assert.False(t, mr.Exists("room:tbl1"))
}

func TestDeleteRoom(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "tbl1", sampleRoom()))
	require.True(t, mr.Exists("room:tbl1"))

	require.NoError(t, store.DeleteRoom(ctx, "tbl1"))
	assert.False(t, mr.Exists("room:tbl1"))
}

func TestGetAllRoomCodes(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "tbl1", sampleRoom()))
	require.NoError(t, store.SaveRoom(ctx, "tbl2", sampleRoom()))

	codes, err := store.GetAllRoomCodes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tbl1", "tbl2"}, codes)
}

func TestRoomExpiration(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "tbl1", sampleRoom()))
	assert.Equal(t, roomExpiration, mr.TTL("room:tbl1"))

	require.NoError(t, store.SetRoomExpiration(ctx, "tbl1", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("room:tbl1"))

	mr.FastForward(2 * time.Minute)
	loaded, err := store.LoadRoom(ctx, "tbl1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &PlayerSessionData{
		PlayerID:   "p1",
		PlayerName: "Ana",
		RoomCode:   "tbl1",
		IsOnline:   true,
	}))

	loaded, err := store.LoadSession(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "p1", loaded.PlayerID)
	assert.Equal(t, "Ana", loaded.PlayerName)
	assert.Equal(t, "tbl1", loaded.RoomCode)
	assert.True(t, loaded.IsOnline)
	assert.Zero(t, loaded.DisconnectedAt)
}

func TestSessionDisconnectedAtRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	departed := time.Now().Add(-30 * time.Second).Unix()
	require.NoError(t, store.SaveSession(ctx, &PlayerSessionData{
		PlayerID:       "p1",
		PlayerName:     "Ana",
		RoomCode:       "tbl1",
		IsOnline:       false,
		DisconnectedAt: departed,
	}))

	loaded, err := store.LoadSession(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.False(t, loaded.IsOnline)
	assert.Equal(t, departed, loaded.DisconnectedAt)
}

func TestSessionMissingAndDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	loaded, err := store.LoadSession(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, store.SaveSession(ctx, &PlayerSessionData{PlayerID: "p1", PlayerName: "Ana"}))
	require.NoError(t, store.DeleteSession(ctx, "p1"))

	loaded, err = store.LoadSession(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
