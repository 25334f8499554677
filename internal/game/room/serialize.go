package room

import (
	"context"

	"github.com/Izoret/Belote-WS/internal/server/storage"
)

// ToRoomData snapshots the room for persistence.
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := &storage.RoomData{
		Code:        r.Code,
		State:       int(r.State),
		Players:     make([]storage.PlayerData, 0, len(r.PlayerOrder)),
		PlayerOrder: r.PlayerOrder,
		CreatedAt:   r.CreatedAt.Unix(),
	}

	for _, id := range r.PlayerOrder {
		p := r.Players[id]
		data.Players = append(data.Players, storage.PlayerData{
			ID:     p.ID,
			Name:   p.Name,
			Team:   p.Team,
			Online: p.Client != nil,
		})
	}

	for _, c := range r.Chat {
		data.Chat = append(data.Chat, storage.ChatEntry{
			Author:    c.Author,
			Text:      c.Text,
			Timestamp: c.Timestamp,
		})
	}

	return data
}

// save writes the snapshot to Redis in the background. Room mutations do
// not wait on persistence.
func (r *Room) save() {
	if r.store == nil {
		return
	}
	go func() { _ = r.store.SaveRoom(context.Background(), r.Code, r.ToRoomData()) }()
}
