package session

import (
	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/bidding"
)

// HandleBid applies one bidding decision: "take" or "pass" in round 1,
// a suit name or "pass" in round 2. An accepted bid hands the turned card
// to the taker, completes the deal to 8 cards each and opens play left of
// the dealer. Four passes in round 2 kill the whole deal.
func (gs *GameSession) HandleBid(playerID, action string) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.phase != PhaseBidding {
		return apperrors.ErrInvalidBid
	}
	seat, ok := gs.seatOf[playerID]
	if !ok {
		return apperrors.ErrNotInRoom
	}

	act, err := bidding.ParseAction(action)
	if err != nil {
		return err
	}

	outcome, err := gs.bidding.Act(seat, act)
	if err != nil {
		return err
	}

	switch outcome {
	case bidding.OutcomeContinue:
		gs.broadcastState()

	case bidding.OutcomeResolved:
		taker := gs.players[gs.bidding.TakerSeat]
		taker.Hand = append(taker.Hand, gs.turnedCard)
		gs.trumpSuit = gs.bidding.TrumpSuit
		if err := gs.completeDeal(taker.Seat); err != nil {
			gs.abort(err)
			return nil
		}
		gs.phase = PhasePlaying
		gs.currentSeat = gs.nextSeat(gs.dealerSeat)
		gs.broadcastState()

	case bidding.OutcomeAborted:
		gs.endGame()
	}
	return nil
}
