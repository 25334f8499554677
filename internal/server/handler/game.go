package handler

import (
	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/room"
	"github.com/Izoret/Belote-WS/internal/game/session"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
	"github.com/Izoret/Belote-WS/internal/protocol/convert"
	"github.com/Izoret/Belote-WS/internal/types"
)

// handleStartGame starts a game with the requester as dealer.
func (h *Handler) handleStartGame(client types.ClientInterface) {
	if h.server.IsMaintenanceMode() {
		client.SendMessage(codec.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "maintenance mode: new games are disabled"))
		return
	}

	r := h.roomManager.GetRoom(client.GetRoom())
	if r == nil {
		sendError(client, apperrors.ErrNotInRoom)
		return
	}

	if err := r.StartGame(client.GetID()); err != nil {
		sendError(client, err)
	}
}

// handleBidAction forwards a bidding decision to the game.
func (h *Handler) handleBidAction(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.BidActionPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	gs := h.gameFor(client)
	if gs == nil {
		sendError(client, apperrors.ErrNoActiveGame)
		return
	}

	if err := gs.HandleBid(client.GetID(), payload.Action); err != nil {
		sendError(client, err)
	}
}

// handlePlayCard forwards a card play to the game.
func (h *Handler) handlePlayCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PlayCardPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	c, ok := convert.InfoToCard(payload.Card)
	if !ok {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	gs := h.gameFor(client)
	if gs == nil {
		sendError(client, apperrors.ErrNoActiveGame)
		return
	}

	if err := gs.HandlePlayCard(client.GetID(), c); err != nil {
		sendError(client, err)
	}
}

// handleEndGame tears the running game down at a player's request.
func (h *Handler) handleEndGame(client types.ClientInterface) {
	gs := h.gameFor(client)
	if gs == nil {
		sendError(client, apperrors.ErrNoActiveGame)
		return
	}

	if err := gs.End(client.GetID()); err != nil {
		sendError(client, err)
	}
}

// gameFor resolves the client's running game session, or nil.
func (h *Handler) gameFor(client types.ClientInterface) *session.GameSession {
	var r *room.Room
	if code := client.GetRoom(); code != "" {
		r = h.roomManager.GetRoom(code)
	}
	if r == nil {
		return nil
	}
	return r.GetGame()
}
