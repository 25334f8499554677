package handler

import (
	"errors"
	"log"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/room"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
	"github.com/Izoret/Belote-WS/internal/server/session"
	"github.com/Izoret/Belote-WS/internal/types"
)

// HandlerDeps carries everything the handler dispatches into.
type HandlerDeps struct {
	Server         types.ServerInterface
	RoomManager    *room.Manager
	ChatLimiter    types.ChatLimiter
	SessionManager *session.SessionManager
}

// Handler routes inbound messages to their operations.
type Handler struct {
	server         types.ServerInterface
	roomManager    *room.Manager
	chatLimiter    types.ChatLimiter
	sessionManager *session.SessionManager
	handlers       map[protocol.MessageType]handlerFunc
}

type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler builds the dispatch table.
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:         deps.Server,
		roomManager:    deps.RoomManager,
		chatLimiter:    deps.ChatLimiter,
		sessionManager: deps.SessionManager,
	}
	h.initHandlers()
	return h
}

func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// Connection operations
		protocol.MsgPing:      h.handlePing,
		protocol.MsgReconnect: h.handleReconnect,

		// Room operations
		protocol.MsgJoinRoom:    h.handleJoinRoom,
		protocol.MsgLeaveRoom:   func(c types.ClientInterface, _ *protocol.Message) { h.handleLeaveRoom(c) },
		protocol.MsgChangeTeam:  h.handleChangeTeam,
		protocol.MsgSendMessage: h.handleSendMessage,

		// Game operations
		protocol.MsgStartGame: func(c types.ClientInterface, _ *protocol.Message) { h.handleStartGame(c) },
		protocol.MsgBidAction: h.handleBidAction,
		protocol.MsgPlayCard:  h.handlePlayCard,
		protocol.MsgEndGame:   func(c types.ClientInterface, _ *protocol.Message) { h.handleEndGame(c) },
	}
}

// Handle dispatches one inbound message.
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("unknown message type %q from player %s", msg.Type, client.GetID())
	client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendError maps an operation failure onto the wire. Known game errors
// keep their code, anything else degrades to the generic one.
func sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
