package protocol

// --- Client request payloads ---

// JoinRoomPayload joins a room, creating it when the code is unknown.
type JoinRoomPayload struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// ChangeTeamPayload picks a team in the lobby. 0 clears the assignment.
type ChangeTeamPayload struct {
	Team int `json:"team"` // 1, 2, or 0 = unassigned
}

// SendMessagePayload is a room chat message from a client.
type SendMessagePayload struct {
	Text string `json:"text"`
}

// ReconnectPayload resumes a departed player's seat.
type ReconnectPayload struct {
	OldID string `json:"old_id"` // the opaque ID from the previous connection
}

// PingPayload heartbeat request.
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // client clock, milliseconds
}

// BidActionPayload is one bidding decision.
// Action is "take", "pass", or a concrete suit name in round 2.
type BidActionPayload struct {
	Action string `json:"action"`
}

// PlayCardPayload plays a single card into the current trick.
type PlayCardPayload struct {
	Card CardInfo `json:"card"`
}

// --- Server response payloads ---

// ConnectedPayload acknowledges a new connection.
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

// PongPayload heartbeat response.
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"` // server clock, milliseconds
}

// RoomUpdatePayload carries the lobby roster and the chat history.
type RoomUpdatePayload struct {
	Players []RoomPlayerInfo `json:"players"`
	Chat    []ChatMessage    `json:"chat"`
}

// NewMessagePayload relays one chat message to the room.
type NewMessagePayload = ChatMessage

// GameStatePayload is the full game state as seen by one recipient:
// only their own hand is listed card by card, other hands appear as counts.
type GameStatePayload struct {
	MyHand          []HandCard       `json:"myHand"`
	Players         []GamePlayerInfo `json:"players"` // seating order
	DealerID        string           `json:"dealerId"`
	Bidding         BiddingInfo      `json:"bidding"`
	TrumpSuit       string           `json:"trumpSuit,omitempty"` // empty until a bid is accepted
	CurrentPlayerID string           `json:"currentPlayerId,omitempty"`
	Tricks          TricksInfo       `json:"tricks"`
}

// ErrorPayload is sent to the single requester whose operation failed.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- Shared data structures ---

// CardInfo is a card on the wire: {"suit":"hearts","rank":"jack"}.
type CardInfo struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// HandCard is a card in the recipient's own hand, tagged with the
// server-computed legality flag for the current trick.
type HandCard struct {
	Suit     string `json:"suit"`
	Rank     string `json:"rank"`
	Playable bool   `json:"playable"`
}

// RoomPlayerInfo is a lobby roster entry.
type RoomPlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team int    `json:"team"` // 0 = unassigned
}

// GamePlayerInfo is a seated player as everyone sees them.
type GamePlayerInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Team     int    `json:"team"`
	HandSize int    `json:"handSize"`
}

// BiddingInfo mirrors the bidding state machine.
type BiddingInfo struct {
	Phase      string    `json:"phase"` // inactive / round1 / round2 / resolved
	TurnedCard *CardInfo `json:"turnedCard"`
	TakerID    string    `json:"takerId,omitempty"`
}

// TricksInfo wraps the current trick; played cards are public.
type TricksInfo struct {
	CurrentTrick []TrickPlay `json:"currentTrick"`
}

// TrickPlay is one play inside a trick.
type TrickPlay struct {
	Card     CardInfo `json:"card"`
	PlayerID string   `json:"playerId"`
}

// ChatMessage is one entry of a room's chat log.
type ChatMessage struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"` // "HH:MM", server local time
}
