package bidding

import (
	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/card"
)

// Phase of the trump-selection machine.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseRound1         // take the turned card's suit, or pass
	PhaseRound2         // name any other suit, or pass
	PhaseResolved
)

var phaseNames = map[Phase]string{
	PhaseInactive: "inactive",
	PhaseRound1:   "round1",
	PhaseRound2:   "round2",
	PhaseResolved: "resolved",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// ActionKind is what a bidder can do on their turn.
type ActionKind int

const (
	ActPass ActionKind = iota
	ActTake
	ActChooseSuit
)

// Action is one bidding decision. Suit is only meaningful for ActChooseSuit.
type Action struct {
	Kind ActionKind
	Suit card.Suit
}

// ParseAction maps the wire action string ("take", "pass", or a suit name)
// to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "pass":
		return Action{Kind: ActPass}, nil
	case "take":
		return Action{Kind: ActTake}, nil
	}
	if suit, ok := card.SuitFromName(s); ok {
		return Action{Kind: ActChooseSuit, Suit: suit}, nil
	}
	return Action{}, apperrors.ErrInvalidBid
}

// Outcome of one bidding act.
type Outcome int

const (
	// OutcomeContinue: the turn moved to the next seat.
	OutcomeContinue Outcome = iota
	// OutcomeResolved: a trump suit was accepted; the taker takes the
	// turned card and the completing deal follows.
	OutcomeResolved
	// OutcomeAborted: all four passed in round 2; the whole deal is dead.
	OutcomeAborted
)

// State is the two-round bidding machine. Seats are indices into the fixed
// seating order; the dealer's next seat always acts first.
type State struct {
	Phase       Phase
	TurnedCard  *card.Card // present during round1/round2, consumed on resolve
	TrumpSuit   card.Suit  // valid once Phase == PhaseResolved
	TakerSeat   int        // -1 until resolved
	CurrentSeat int

	dealerSeat int
}

// New opens round 1 with the turned card face up.
func New(turned card.Card, dealerSeat int) *State {
	return &State{
		Phase:       PhaseRound1,
		TurnedCard:  &turned,
		TakerSeat:   -1,
		CurrentSeat: (dealerSeat + 1) % 4,
		dealerSeat:  dealerSeat,
	}
}

// Act applies one decision by the player at seat. Acting out of turn, or
// re-proposing the rejected suit in round 2, fails without changing state.
// On OutcomeResolved the turned card has been consumed (cleared from the
// state) and must be handed to the taker by the caller.
func (s *State) Act(seat int, action Action) (Outcome, error) {
	if seat != s.CurrentSeat {
		return OutcomeContinue, apperrors.ErrNotYourTurn
	}

	switch s.Phase {
	case PhaseRound1:
		switch action.Kind {
		case ActTake:
			return s.resolve(seat, s.TurnedCard.Suit), nil
		case ActPass:
			// A pass by the dealer closes the round: everyone has
			// now declined the turned card once.
			if seat == s.dealerSeat {
				s.Phase = PhaseRound2
			}
			s.CurrentSeat = (seat + 1) % 4
			return OutcomeContinue, nil
		default:
			return OutcomeContinue, apperrors.ErrInvalidBid
		}

	case PhaseRound2:
		switch action.Kind {
		case ActChooseSuit:
			if action.Suit == s.TurnedCard.Suit {
				// That suit was already declined by the whole table.
				return OutcomeContinue, apperrors.ErrInvalidBid
			}
			return s.resolve(seat, action.Suit), nil
		case ActPass:
			if seat == s.dealerSeat {
				s.Phase = PhaseInactive
				return OutcomeAborted, nil
			}
			s.CurrentSeat = (seat + 1) % 4
			return OutcomeContinue, nil
		default:
			return OutcomeContinue, apperrors.ErrInvalidBid
		}
	}

	return OutcomeContinue, apperrors.ErrInvalidBid
}

func (s *State) resolve(seat int, trump card.Suit) Outcome {
	s.Phase = PhaseResolved
	s.TrumpSuit = trump
	s.TakerSeat = seat
	s.TurnedCard = nil
	return OutcomeResolved
}
