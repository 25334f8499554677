package session

import (
	"time"

	"github.com/Izoret/Belote-WS/internal/protocol"
)

// RoomLink is the slice of the room a running game needs: delivering frames
// and handing the table back to the lobby when the game is over.
type RoomLink interface {
	Broadcast(msg *protocol.Message)
	SendTo(playerID string, msg *protocol.Message)
	GameEnded()
}

// PlayerData seeds one seat of a new game.
type PlayerData struct {
	ID   string
	Name string
	Team int // 1 or 2
}

// Config paces the automatic phases. Zero values disable the pauses,
// which tests rely on.
type Config struct {
	ShufflePause  time.Duration // after announcing the table, before dealing
	DealStepPause time.Duration // between dealing chunks
	TrickPause    time.Duration // a finished trick stays visible this long
}
