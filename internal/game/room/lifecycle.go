package room

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
	"github.com/Izoret/Belote-WS/internal/types"
)

// Join puts a client into the room named by code, creating the room when
// it does not exist yet. Names must be unique within a room.
func (m *Manager) Join(client types.ClientInterface, code, name string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLen {
		return nil, &apperrors.GameError{
			Code:    protocol.ErrCodeInvalidMsg,
			Message: "invalid player name",
		}
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.ErrRoomNotFound
	}

	m.mu.Lock()
	r, exists := m.rooms[code]
	if !exists {
		r = &Room{
			Code:       code,
			State:      RoomStateWaiting,
			Players:    make(map[string]*RoomPlayer),
			CreatedAt:  time.Now(),
			store:      m.store,
			sessionCfg: m.sessionCfg,
		}
		m.rooms[code] = r
		log.Printf("room %s created", code)
	}
	m.mu.Unlock()

	r.mu.Lock()
	if r.State != RoomStateWaiting {
		r.mu.Unlock()
		return nil, apperrors.ErrGameAlreadyActive
	}
	if len(r.Players) >= maxPlayers {
		r.mu.Unlock()
		return nil, apperrors.ErrRoomFull
	}
	for _, p := range r.Players {
		if strings.EqualFold(p.Name, name) {
			r.mu.Unlock()
			return nil, apperrors.ErrNameTaken
		}
	}

	r.Players[client.GetID()] = &RoomPlayer{
		ID:     client.GetID(),
		Name:   name,
		Client: client,
	}
	r.PlayerOrder = append(r.PlayerOrder, client.GetID())
	client.SetName(name)
	client.SetRoom(code)

	r.broadcastRoomUpdateLocked()
	r.mu.Unlock()

	log.Printf("player %s joined room %s", name, code)
	r.save()

	return r, nil
}

// Leave removes a client from its room. Leaving a table mid-game ends the
// game for everyone; the last player out dissolves the room.
func (m *Manager) Leave(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	m.mu.RLock()
	r := m.rooms[code]
	m.mu.RUnlock()
	if r == nil {
		client.SetRoom("")
		return
	}

	r.mu.RLock()
	gs := r.Game
	r.mu.RUnlock()
	if gs != nil {
		gs.Close()
	}

	r.mu.Lock()
	player, ok := r.Players[client.GetID()]
	if !ok {
		r.mu.Unlock()
		client.SetRoom("")
		return
	}

	delete(r.Players, client.GetID())
	for i, id := range r.PlayerOrder {
		if id == client.GetID() {
			r.PlayerOrder = append(r.PlayerOrder[:i], r.PlayerOrder[i+1:]...)
			break
		}
	}
	client.SetRoom("")

	empty := len(r.Players) == 0
	if !empty {
		r.broadcastRoomUpdateLocked()
	}
	r.mu.Unlock()

	log.Printf("player %s left room %s", player.Name, code)

	if empty {
		m.deleteRoom(code)
	} else {
		r.save()
	}
}

// ChangeTeam assigns the client to team 1 or 2, or back to unassigned
// with 0. Only possible while the table is in the lobby.
func (m *Manager) ChangeTeam(client types.ClientInterface, team int) error {
	if team < 0 || team > 2 {
		return &apperrors.GameError{
			Code:    protocol.ErrCodeInvalidMsg,
			Message: "invalid team",
		}
	}

	r := m.GetRoom(client.GetRoom())
	if r == nil {
		return apperrors.ErrNotInRoom
	}

	r.mu.Lock()
	player, ok := r.Players[client.GetID()]
	if !ok {
		r.mu.Unlock()
		return apperrors.ErrNotInRoom
	}
	if r.State != RoomStateWaiting {
		r.mu.Unlock()
		return apperrors.ErrGameAlreadyActive
	}

	player.Team = team
	r.broadcastRoomUpdateLocked()
	r.mu.Unlock()

	r.save()
	return nil
}

// NotifyPlayerOffline marks a disconnected player's seat as vacant but
// claimable. When every seat is offline the room is torn down instead.
func (m *Manager) NotifyPlayerOffline(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	m.mu.RLock()
	r := m.rooms[code]
	m.mu.RUnlock()
	if r == nil {
		return
	}

	r.mu.Lock()
	if player, ok := r.Players[client.GetID()]; ok {
		player.Client = nil
	}

	allOffline := true
	for _, p := range r.Players {
		if p.Client != nil {
			allOffline = false
			break
		}
	}
	gs := r.Game
	r.mu.Unlock()

	if allOffline {
		log.Printf("room %s has no connected players left, cleaning up", code)
		if gs != nil {
			gs.Close()
		}
		m.deleteRoom(code)
		return
	}

	log.Printf("player %s went offline in room %s", client.GetName(), code)
}

// ReconnectPlayer hands a departed player's seat to a new connection that
// has already adopted the old player ID. The rejoining client receives the
// room state, and the running game, if any, re-sends everyone's view.
func (m *Manager) ReconnectPlayer(client types.ClientInterface) error {
	r := m.getRoomByPlayerID(client.GetID())
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	r.mu.Lock()
	player := r.Players[client.GetID()]
	player.Client = client
	client.SetName(player.Name)
	client.SetRoom(r.Code)
	gs := r.Game
	r.broadcastRoomUpdateLocked()
	r.mu.Unlock()

	log.Printf("player %s reconnected to room %s", player.Name, r.Code)

	if gs != nil {
		gs.Resync()
	}
	r.save()
	return nil
}

func (m *Manager) getRoomByPlayerID(playerID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.rooms {
		r.mu.RLock()
		_, ok := r.Players[playerID]
		r.mu.RUnlock()
		if ok {
			return r
		}
	}
	return nil
}

func (m *Manager) deleteRoom(code string) {
	m.mu.Lock()
	delete(m.rooms, code)
	m.mu.Unlock()

	if m.store != nil {
		go func() { _ = m.store.DeleteRoom(context.Background(), code) }()
	}
	log.Printf("room %s dissolved", code)
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.cleanup()
	}
}

// cleanup drops idle lobbies that outlived the room timeout.
func (m *Manager) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	for code, r := range m.rooms {
		r.mu.RLock()
		stale := r.State == RoomStateWaiting && now.Sub(r.CreatedAt) > m.roomTimeout
		r.mu.RUnlock()
		if !stale {
			continue
		}

		r.Broadcast(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, "room closed after inactivity"))
		r.mu.RLock()
		for _, p := range r.Players {
			if p.Client != nil {
				p.Client.SetRoom("")
			}
		}
		r.mu.RUnlock()

		delete(m.rooms, code)
		if m.store != nil {
			c := code
			go func() { _ = m.store.DeleteRoom(context.Background(), c) }()
		}
		log.Printf("room %s timed out", code)
	}
}
