package types

import (
	"github.com/Izoret/Belote-WS/internal/protocol"
)

// ServerInterface is the server as seen by handlers and rooms, kept as an
// interface to break the import cycle with the client type.
type ServerInterface interface {
	IsMaintenanceMode() bool
	GetOnlineCount() int
	GetClientByID(id string) ClientInterface
	RegisterClient(id string, client ClientInterface)
	UnregisterClient(id string)
}

// ClientInterface is one connected player. SetID exists for reconnection:
// the fresh connection adopts the departed player's identity.
type ClientInterface interface {
	GetID() string
	SetID(id string)
	GetName() string
	SetName(name string)
	GetRoom() string
	SetRoom(code string)
	SendMessage(msg *protocol.Message)
	Close()
}

// ChatLimiter throttles chat messages per client.
type ChatLimiter interface {
	AllowChat(clientID string) (allowed bool, reason string)
	RemoveClient(clientID string)
}
