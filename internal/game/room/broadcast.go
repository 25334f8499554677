package room

import (
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
)

// Broadcast sends a message to every connected player in the room.
func (r *Room) Broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcastLocked(msg)
}

// BroadcastExcept sends a message to everyone but one player.
func (r *Room) BroadcastExcept(excludeID string, msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, p := range r.Players {
		if id != excludeID && p.Client != nil {
			p.Client.SendMessage(msg)
		}
	}
}

// SendTo sends a message to a single player. Offline seats swallow it.
func (r *Room) SendTo(playerID string, msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.Players[playerID]; ok && p.Client != nil {
		p.Client.SendMessage(msg)
	}
}

func (r *Room) broadcastLocked(msg *protocol.Message) {
	for _, p := range r.Players {
		if p.Client != nil {
			p.Client.SendMessage(msg)
		}
	}
}

// broadcastRoomUpdateLocked pushes the current roster and chat log to the
// whole room. Callers hold the lock.
func (r *Room) broadcastRoomUpdateLocked() {
	r.broadcastLocked(codec.MustNewMessage(protocol.MsgRoomUpdate, r.roomUpdateLocked()))
}

func (r *Room) roomUpdateLocked() protocol.RoomUpdatePayload {
	players := make([]protocol.RoomPlayerInfo, 0, len(r.PlayerOrder))
	for _, id := range r.PlayerOrder {
		p := r.Players[id]
		players = append(players, protocol.RoomPlayerInfo{
			ID:   p.ID,
			Name: p.Name,
			Team: p.Team,
		})
	}
	return protocol.RoomUpdatePayload{
		Players: players,
		Chat:    r.Chat,
	}
}

// RoomUpdate returns the roster payload as broadcast to clients.
func (r *Room) RoomUpdate() protocol.RoomUpdatePayload {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roomUpdateLocked()
}
