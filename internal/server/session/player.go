package session

import (
	"context"
	"sync"
	"time"

	"github.com/Izoret/Belote-WS/internal/server/storage"
)

const (
	// How long a departed player's seat stays claimable via reconnect.
	reconnectTimeout = 2 * time.Minute
	// How long an offline session survives before being wiped.
	sessionExpireTime = 10 * time.Minute
)

// PlayerSession tracks one player identity across connections. A client
// that disconnects keeps its session alive for a while; a new connection
// presenting the old player ID can pick the identity back up.
type PlayerSession struct {
	PlayerID   string
	PlayerName string
	RoomCode   string

	DisconnectedAt time.Time
	IsOnline       bool
	deleted        bool

	mu sync.RWMutex
	// Serializes write-behind saves so a stale snapshot never lands
	// after a newer one.
	saveMu sync.Mutex
}

// SessionManager holds all live and recently-departed player sessions,
// write-behind mirrored to Redis.
type SessionManager struct {
	store    *storage.RedisStore
	sessions map[string]*PlayerSession // playerID -> session
	mu       sync.RWMutex
}

// NewSessionManager creates the manager and starts its cleanup loop.
func NewSessionManager(store *storage.RedisStore) *SessionManager {
	sm := &SessionManager{
		store:    store,
		sessions: make(map[string]*PlayerSession),
	}

	go sm.cleanupLoop()

	return sm
}

// CreateSession registers a fresh connection's identity.
func (sm *SessionManager) CreateSession(playerID, playerName string) *PlayerSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session := &PlayerSession{
		PlayerID:   playerID,
		PlayerName: playerName,
		IsOnline:   true,
	}
	sm.sessions[playerID] = session

	sm.persist(session)
	return session
}

// GetSession returns the session for a player ID, or nil.
func (sm *SessionManager) GetSession(playerID string) *PlayerSession {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[playerID]
}

// SetOffline marks a player as disconnected, starting the reconnect window.
func (sm *SessionManager) SetOffline(playerID string) {
	sm.mu.RLock()
	session, ok := sm.sessions[playerID]
	sm.mu.RUnlock()

	if ok {
		session.mu.Lock()
		session.IsOnline = false
		session.DisconnectedAt = time.Now()
		session.mu.Unlock()
		sm.persist(session)
	}
}

// SetOnline marks a player as connected again.
func (sm *SessionManager) SetOnline(playerID string) {
	sm.mu.RLock()
	session, ok := sm.sessions[playerID]
	sm.mu.RUnlock()

	if ok {
		session.mu.Lock()
		session.IsOnline = true
		session.DisconnectedAt = time.Time{}
		session.mu.Unlock()
		sm.persist(session)
	}
}

// SetName records the name a player joined a room under.
func (sm *SessionManager) SetName(playerID, name string) {
	sm.mu.RLock()
	session, ok := sm.sessions[playerID]
	sm.mu.RUnlock()

	if ok {
		session.mu.Lock()
		session.PlayerName = name
		session.mu.Unlock()
		sm.persist(session)
	}
}

// SetRoom records the room a player currently occupies.
func (sm *SessionManager) SetRoom(playerID, roomCode string) {
	sm.mu.RLock()
	session, ok := sm.sessions[playerID]
	sm.mu.RUnlock()

	if ok {
		session.mu.Lock()
		session.RoomCode = roomCode
		session.mu.Unlock()
		sm.persist(session)
	}
}

// DeleteSession forgets a player entirely.
func (sm *SessionManager) DeleteSession(playerID string) {
	sm.mu.Lock()
	session, ok := sm.sessions[playerID]
	delete(sm.sessions, playerID)
	sm.mu.Unlock()

	if !ok {
		return
	}

	session.mu.Lock()
	session.deleted = true
	session.mu.Unlock()

	if sm.store != nil {
		go func() {
			session.saveMu.Lock()
			defer session.saveMu.Unlock()
			_ = sm.store.DeleteSession(context.Background(), playerID)
		}()
	}
}

// CanReconnect reports whether old_id names a departed player whose
// reconnect window is still open.
func (sm *SessionManager) CanReconnect(playerID string) bool {
	sm.mu.RLock()
	session, ok := sm.sessions[playerID]
	sm.mu.RUnlock()
	if !ok {
		return false
	}

	session.mu.RLock()
	defer session.mu.RUnlock()

	if session.IsOnline {
		return false
	}
	return time.Since(session.DisconnectedAt) <= reconnectTimeout
}

// IsOnline reports whether the player currently has a live connection.
func (sm *SessionManager) IsOnline(playerID string) bool {
	sm.mu.RLock()
	session, ok := sm.sessions[playerID]
	sm.mu.RUnlock()
	if !ok {
		return false
	}

	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.IsOnline
}

// persist mirrors the session to Redis from a goroutine. The snapshot
// is taken at write time under saveMu, so every save carries the state
// current when it runs and concurrent saves cannot reorder into a
// stale overwrite.
func (sm *SessionManager) persist(session *PlayerSession) {
	if sm.store == nil {
		return
	}

	go func() {
		session.saveMu.Lock()
		defer session.saveMu.Unlock()

		session.mu.RLock()
		if session.deleted {
			session.mu.RUnlock()
			return
		}
		data := &storage.PlayerSessionData{
			PlayerID:   session.PlayerID,
			PlayerName: session.PlayerName,
			RoomCode:   session.RoomCode,
			IsOnline:   session.IsOnline,
		}
		if !session.DisconnectedAt.IsZero() {
			data.DisconnectedAt = session.DisconnectedAt.Unix()
		}
		session.mu.RUnlock()

		_ = sm.store.SaveSession(context.Background(), data)
	}()
}

func (sm *SessionManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		sm.cleanup()
	}
}

func (sm *SessionManager) cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	for playerID, session := range sm.sessions {
		session.mu.RLock()
		expired := !session.IsOnline && now.Sub(session.DisconnectedAt) > sessionExpireTime
		session.mu.RUnlock()
		if expired {
			delete(sm.sessions, playerID)
			session.mu.Lock()
			session.deleted = true
			session.mu.Unlock()
			if sm.store != nil {
				id, s := playerID, session
				go func() {
					s.saveMu.Lock()
					defer s.saveMu.Unlock()
					_ = sm.store.DeleteSession(context.Background(), id)
				}()
			}
		}
	}
}
