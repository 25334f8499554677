package handler

import (
	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
	"github.com/Izoret/Belote-WS/internal/types"
)

// handleJoinRoom joins (or implicitly creates) a room.
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	if h.server.IsMaintenanceMode() {
		client.SendMessage(codec.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "maintenance mode: joining rooms is disabled"))
		return
	}

	payload, err := codec.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		h.roomManager.Leave(client)
	}

	if _, err := h.roomManager.Join(client, payload.RoomCode, payload.PlayerName); err != nil {
		sendError(client, err)
		return
	}

	h.sessionManager.SetName(client.GetID(), client.GetName())
	h.sessionManager.SetRoom(client.GetID(), client.GetRoom())
}

// handleLeaveRoom leaves the current room.
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	h.roomManager.Leave(client)
	h.sessionManager.SetRoom(client.GetID(), "")
}

// handleChangeTeam picks a team in the lobby.
func (h *Handler) handleChangeTeam(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ChangeTeamPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.roomManager.ChangeTeam(client, payload.Team); err != nil {
		sendError(client, err)
	}
}

// handleSendMessage relays a chat message to the room.
func (h *Handler) handleSendMessage(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.SendMessagePayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if allowed, reason := h.chatLimiter.AllowChat(client.GetID()); !allowed {
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeRateLimit, reason))
		return
	}

	r := h.roomManager.GetRoom(client.GetRoom())
	if r == nil {
		sendError(client, apperrors.ErrNotInRoom)
		return
	}

	if err := r.AddChat(client, payload.Text); err != nil {
		sendError(client, err)
	}
}
