package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	roomKeyPrefix    = "room:"
	sessionKeyPrefix = "session:"

	roomExpiration = 2 * time.Hour
)

// RoomData is the Redis snapshot of a room: roster, teams and chat log.
// Enough to inspect or rebuild a lobby, not a running game.
type RoomData struct {
	Code        string       `json:"code"`
	State       int          `json:"state"`
	Players     []PlayerData `json:"players"`
	PlayerOrder []string     `json:"player_order"`
	Chat        []ChatEntry  `json:"chat"`
	CreatedAt   int64        `json:"created_at"`
}

// PlayerData is one roster entry of a RoomData snapshot.
type PlayerData struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Team   int    `json:"team"`
	Online bool   `json:"online"`
}

// ChatEntry is one persisted chat line.
type ChatEntry struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// RedisStore persists rooms and player sessions.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// --- Room snapshots ---

// SaveRoom writes a room snapshot with the standard expiration.
func (rs *RedisStore) SaveRoom(ctx context.Context, roomCode string, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serialize room data: %w", err)
	}

	key := roomKeyPrefix + roomCode
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom reads a room snapshot. A missing room returns (nil, nil).
func (rs *RedisStore) LoadRoom(ctx context.Context, code string) (*RoomData, error) {
	key := roomKeyPrefix + code
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("deserialize room data: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom drops a room snapshot.
func (rs *RedisStore) DeleteRoom(ctx context.Context, code string) error {
	key := roomKeyPrefix + code
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomCodes lists every persisted room code.
func (rs *RedisStore) GetAllRoomCodes(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(keys))
	for i, key := range keys {
		codes[i] = key[len(roomKeyPrefix):]
	}
	return codes, nil
}

// SetRoomExpiration overrides the remaining lifetime of a room snapshot.
func (rs *RedisStore) SetRoomExpiration(ctx context.Context, code string, expiration time.Duration) error {
	key := roomKeyPrefix + code
	return rs.client.Expire(ctx, key, expiration).Err()
}

// --- Player sessions ---

// PlayerSessionData mirrors one player's connection state, keyed by the
// opaque player ID that a reconnecting client presents as old_id.
type PlayerSessionData struct {
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	RoomCode       string `json:"room_code"`
	IsOnline       bool   `json:"is_online"`
	DisconnectedAt int64  `json:"disconnected_at,omitempty"`
}

// SaveSession writes a session hash.
func (rs *RedisStore) SaveSession(ctx context.Context, session *PlayerSessionData) error {
	data := map[string]any{
		"player_id":   session.PlayerID,
		"player_name": session.PlayerName,
		"room_code":   session.RoomCode,
		"is_online":   session.IsOnline,
	}

	if session.DisconnectedAt != 0 {
		data["disconnected_at"] = session.DisconnectedAt
	}

	key := sessionKeyPrefix + session.PlayerID
	return rs.client.HSet(ctx, key, data).Err()
}

// LoadSession reads a session hash. A missing session returns (nil, nil).
func (rs *RedisStore) LoadSession(ctx context.Context, playerID string) (*PlayerSessionData, error) {
	key := sessionKeyPrefix + playerID
	data, err := rs.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	session := &PlayerSessionData{
		PlayerID:   data["player_id"],
		PlayerName: data["player_name"],
		RoomCode:   data["room_code"],
		IsOnline:   data["is_online"] == "1",
	}
	if raw, ok := data["disconnected_at"]; ok {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse disconnected_at: %w", err)
		}
		session.DisconnectedAt = ts
	}

	return session, nil
}

// DeleteSession drops a session hash.
func (rs *RedisStore) DeleteSession(ctx context.Context, playerID string) error {
	key := sessionKeyPrefix + playerID
	return rs.client.Del(ctx, key).Err()
}
