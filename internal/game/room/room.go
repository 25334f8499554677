package room

import (
	"sync"
	"time"

	"github.com/Izoret/Belote-WS/internal/game/session"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/server/storage"
	"github.com/Izoret/Belote-WS/internal/types"
)

const (
	maxPlayers  = 4
	maxChatSize = 100 // oldest chat lines are dropped past this
	maxNameLen  = 24
)

// RoomState is the lobby-level state of a room.
type RoomState int

const (
	RoomStateWaiting RoomState = iota
	RoomStatePlaying
)

// RoomPlayer is one occupant of a room. Client goes nil while the player
// is disconnected; ID and Name stay so the seat can be reclaimed.
type RoomPlayer struct {
	ID     string
	Name   string
	Team   int // 0 = unassigned
	Client types.ClientInterface
}

// Room is one table: up to four players, a chat log, and at most one
// running game.
type Room struct {
	Code        string
	State       RoomState
	Players     map[string]*RoomPlayer
	PlayerOrder []string // join order
	Chat        []protocol.ChatMessage
	Game        *session.GameSession
	CreatedAt   time.Time

	store      *storage.RedisStore
	sessionCfg session.Config

	mu sync.RWMutex
}

// Manager owns all live rooms. Rooms are created implicitly by the first
// join and dropped when the last player is gone.
type Manager struct {
	store       *storage.RedisStore
	sessionCfg  session.Config
	roomTimeout time.Duration
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewManager creates the room manager and starts its cleanup loop.
func NewManager(store *storage.RedisStore, sessionCfg session.Config, roomTimeout time.Duration) *Manager {
	m := &Manager{
		store:       store,
		sessionCfg:  sessionCfg,
		roomTimeout: roomTimeout,
		rooms:       make(map[string]*Room),
	}

	go m.cleanupLoop()

	return m
}

// GetRoom returns a live room by code, or nil.
func (m *Manager) GetRoom(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[code]
}

// GetActiveGamesCount counts rooms with a game in progress.
func (m *Manager) GetActiveGamesCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, r := range m.rooms {
		r.mu.RLock()
		if r.State == RoomStatePlaying {
			count++
		}
		r.mu.RUnlock()
	}
	return count
}
