package apperrors

import (
	"github.com/Izoret/Belote-WS/internal/protocol"
)

// GameError is the error type shared by the room directory and the game
// session. The code selects the wire error payload sent to the requester.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Predefined errors.
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: protocol.ErrorMessages[protocol.ErrCodeRoomNotFound]}
	ErrRoomFull     = &GameError{Code: protocol.ErrCodeRoomFull, Message: protocol.ErrorMessages[protocol.ErrCodeRoomFull]}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: protocol.ErrorMessages[protocol.ErrCodeNotInRoom]}
	ErrNameTaken    = &GameError{Code: protocol.ErrCodeNameTaken, Message: protocol.ErrorMessages[protocol.ErrCodeNameTaken]}

	ErrNoActiveGame       = &GameError{Code: protocol.ErrCodeNoActiveGame, Message: protocol.ErrorMessages[protocol.ErrCodeNoActiveGame]}
	ErrGameAlreadyActive  = &GameError{Code: protocol.ErrCodeGameAlreadyActive, Message: protocol.ErrorMessages[protocol.ErrCodeGameAlreadyActive]}
	ErrNotYourTurn        = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: protocol.ErrorMessages[protocol.ErrCodeNotYourTurn]}
	ErrCardNotInHand      = &GameError{Code: protocol.ErrCodeCardNotInHand, Message: protocol.ErrorMessages[protocol.ErrCodeCardNotInHand]}
	ErrCardNotPlayable    = &GameError{Code: protocol.ErrCodeCardNotPlayable, Message: protocol.ErrorMessages[protocol.ErrCodeCardNotPlayable]}
	ErrInvalidPlayerCount = &GameError{Code: protocol.ErrCodeInvalidPlayerCount, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidPlayerCount]}
	ErrUnbalancedTeams    = &GameError{Code: protocol.ErrCodeUnbalancedTeams, Message: protocol.ErrorMessages[protocol.ErrCodeUnbalancedTeams]}
	ErrInvalidBid         = &GameError{Code: protocol.ErrCodeInvalidBid, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidBid]}
)
