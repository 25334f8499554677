package protocol

import "encoding/json"

// Message is the envelope every frame on the wire uses.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType discriminates the envelope payload.
type MessageType string

// Client → server message types.
const (
	// Connection operations
	MsgReconnect MessageType = "reconnect" // resume a previous identity
	MsgPing      MessageType = "ping"      // heartbeat ping

	// Room operations
	MsgJoinRoom    MessageType = "join_room"    // join (or create) a room by code
	MsgLeaveRoom   MessageType = "leave_room"   // leave the current room
	MsgChangeTeam  MessageType = "change_team"  // pick team 1 or 2 in the lobby
	MsgSendMessage MessageType = "send_message" // room chat

	// Game operations
	MsgStartGame MessageType = "start_game" // requester becomes dealer
	MsgBidAction MessageType = "bid_action" // take / pass / suit choice
	MsgPlayCard  MessageType = "play_card"  // play one card into the trick
	MsgEndGame   MessageType = "end_game"   // tear down the running game
)

// Server → client message types.
const (
	MsgConnected  MessageType = "connected"   // connection accepted, ID assigned
	MsgPong       MessageType = "pong"        // heartbeat pong
	MsgRoomUpdate MessageType = "room_update" // lobby roster + chat log
	MsgNewMessage MessageType = "new_message" // one chat message

	MsgGameState MessageType = "game_state_update" // full per-recipient game state
	MsgGameEnd   MessageType = "game_end"          // game slot cleared

	MsgError MessageType = "error"
)
