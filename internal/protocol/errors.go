package protocol

// Error codes, grouped by area: 1xxx protocol, 2xxx room, 3xxx game, 5xxx server.
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001
	ErrCodeRateLimit  = 1002

	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003
	ErrCodeNameTaken    = 2004

	ErrCodeNoActiveGame       = 3001
	ErrCodeGameAlreadyActive  = 3002
	ErrCodeNotYourTurn        = 3003
	ErrCodeCardNotInHand      = 3004
	ErrCodeCardNotPlayable    = 3005
	ErrCodeInvalidPlayerCount = 3006
	ErrCodeUnbalancedTeams    = 3007
	ErrCodeInvalidBid         = 3008
	ErrCodeEmptyDeck          = 3099 // internal consistency failure, never a user error

	ErrCodeServerMaintenance = 5003
)

// ErrorMessages maps codes to their default user-facing text.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:    "unknown error",
	ErrCodeInvalidMsg: "invalid message format",
	ErrCodeRateLimit:  "too many requests",

	ErrCodeRoomNotFound: "room not found",
	ErrCodeRoomFull:     "the room is already full",
	ErrCodeNotInRoom:    "you are not in a room",
	ErrCodeNameTaken:    "this name is already taken in the room",

	ErrCodeNoActiveGame:       "no game in progress",
	ErrCodeGameAlreadyActive:  "the game has already started",
	ErrCodeNotYourTurn:        "it is not your turn",
	ErrCodeCardNotInHand:      "you do not hold that card",
	ErrCodeCardNotPlayable:    "that card cannot be played right now",
	ErrCodeInvalidPlayerCount: "exactly 4 players are needed to start",
	ErrCodeUnbalancedTeams:    "teams are not balanced (2 vs 2)",
	ErrCodeInvalidBid:         "invalid bid",
	ErrCodeEmptyDeck:          "deck unexpectedly empty",

	ErrCodeServerMaintenance: "server under maintenance",
}
