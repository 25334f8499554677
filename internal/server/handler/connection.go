package handler

import (
	"log"
	"time"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
	"github.com/Izoret/Belote-WS/internal/types"
)

// handlePing answers the heartbeat with both clocks.
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	var clientTS int64
	if payload, err := codec.ParsePayload[protocol.PingPayload](msg); err == nil {
		clientTS = payload.Timestamp
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: clientTS,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// handleReconnect lets a fresh connection reclaim a departed player's
// identity. The client presents the player ID it held before; when the
// reconnect window is still open, the connection adopts that ID and the
// seat comes back to life.
func (h *Handler) handleReconnect(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ReconnectPayload](msg)
	if err != nil || payload.OldID == "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if !h.sessionManager.CanReconnect(payload.OldID) {
		sendError(client, apperrors.ErrRoomNotFound)
		return
	}

	// Retire the throwaway identity this connection came in with, then
	// adopt the old one.
	newID := client.GetID()
	h.server.UnregisterClient(newID)
	h.sessionManager.DeleteSession(newID)
	client.SetID(payload.OldID)
	h.server.RegisterClient(payload.OldID, client)
	h.sessionManager.SetOnline(payload.OldID)

	if err := h.roomManager.ReconnectPlayer(client); err != nil {
		// The room is gone; the identity survives in the lobby.
		client.SendMessage(codec.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
			PlayerID: client.GetID(),
		}))
		sendError(client, err)
		return
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID: client.GetID(),
	}))

	log.Printf("player %s resumed session (was %s)", client.GetID(), newID)
}
