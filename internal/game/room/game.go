package room

import (
	"log"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/session"
)

// StartGame launches a game with the requesting player as dealer. The
// table needs exactly four players split 2-vs-2; everyone must be online.
func (r *Room) StartGame(requesterID string) error {
	r.mu.Lock()

	if _, ok := r.Players[requesterID]; !ok {
		r.mu.Unlock()
		return apperrors.ErrNotInRoom
	}
	if r.Game != nil {
		r.mu.Unlock()
		return apperrors.ErrGameAlreadyActive
	}
	if len(r.Players) != maxPlayers {
		r.mu.Unlock()
		return apperrors.ErrInvalidPlayerCount
	}

	teamCounts := map[int]int{}
	players := make([]session.PlayerData, 0, len(r.PlayerOrder))
	for _, id := range r.PlayerOrder {
		p := r.Players[id]
		teamCounts[p.Team]++
		players = append(players, session.PlayerData{
			ID:   p.ID,
			Name: p.Name,
			Team: p.Team,
		})
	}
	if teamCounts[1] != 2 || teamCounts[2] != 2 {
		r.mu.Unlock()
		return apperrors.ErrUnbalancedTeams
	}

	gs := session.New(r, r.sessionCfg, players, requesterID)
	r.Game = gs
	r.State = RoomStatePlaying
	r.mu.Unlock()

	log.Printf("game started in room %s, dealer %s", r.Code, requesterID)

	gs.Start()
	r.save()
	return nil
}

// GetGame returns the running game session, or nil.
func (r *Room) GetGame() *session.GameSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Game
}

// GameEnded clears the game slot and puts the table back in the lobby.
// Called by the session itself when a game finishes or is torn down.
func (r *Room) GameEnded() {
	r.mu.Lock()
	r.Game = nil
	r.State = RoomStateWaiting
	r.broadcastRoomUpdateLocked()
	r.mu.Unlock()

	log.Printf("game ended in room %s", r.Code)
	r.save()
}
