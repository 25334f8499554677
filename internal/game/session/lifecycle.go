package session

import (
	"log"
	"time"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/bidding"
	"github.com/Izoret/Belote-WS/internal/game/card"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
)

// Start shuffles a fresh deck and runs the paced opening deal in the
// background: 3 cards each, then 2 cards each, then the turned card,
// with a state broadcast after every step so clients can animate.
// Bidding opens as soon as the turned card is revealed.
func (gs *GameSession) Start() {
	gs.mu.Lock()
	gs.deck = card.NewDeck()
	gs.deck.Shuffle()
	gs.broadcastState()
	gs.mu.Unlock()

	go gs.runDeal()
}

func (gs *GameSession) runDeal() {
	time.Sleep(gs.cfg.ShufflePause)

	gs.mu.Lock()
	if !gs.dealAround(3) {
		gs.mu.Unlock()
		return
	}
	gs.broadcastState()
	gs.mu.Unlock()

	time.Sleep(gs.cfg.DealStepPause)

	gs.mu.Lock()
	if !gs.dealAround(2) {
		gs.mu.Unlock()
		return
	}
	gs.broadcastState()
	gs.mu.Unlock()

	time.Sleep(gs.cfg.DealStepPause)

	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.phase != PhaseDealing {
		return
	}
	turned, err := gs.deck.Draw()
	if err != nil {
		gs.abort(err)
		return
	}
	gs.turnedCard = turned
	gs.bidding = bidding.New(turned, gs.dealerSeat)
	gs.phase = PhaseBidding
	gs.broadcastState()
}

// dealAround deals n cards to every seat, starting left of the dealer.
// Returns false when the session was torn down mid-deal or the deck ran
// dry, which the dealing arithmetic should make impossible.
func (gs *GameSession) dealAround(n int) bool {
	if gs.phase != PhaseDealing {
		return false
	}
	for range n {
		for i := range gs.players {
			p := gs.players[gs.nextSeat(gs.dealerSeat+i)]
			c, err := gs.deck.Draw()
			if err != nil {
				gs.abort(err)
				return false
			}
			p.Hand = append(p.Hand, c)
		}
	}
	return true
}

// completeDeal brings every hand to 8 cards after a bid was accepted.
// The taker already holds the turned card, so they draw one fewer.
func (gs *GameSession) completeDeal(takerSeat int) error {
	for i := range gs.players {
		seat := gs.nextSeat(gs.dealerSeat + i)
		n := 3
		if seat == takerSeat {
			n = 2
		}
		for range n {
			c, err := gs.deck.Draw()
			if err != nil {
				return err
			}
			gs.players[seat].Hand = append(gs.players[seat].Hand, c)
		}
	}
	return nil
}

// End tears down the game at a player's request. The table goes back to
// the lobby and every client gets a game_end frame.
func (gs *GameSession) End(playerID string) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.phase == PhaseEnded {
		return apperrors.ErrNoActiveGame
	}
	if _, ok := gs.seatOf[playerID]; !ok {
		return apperrors.ErrNotInRoom
	}

	gs.endGame()
	return nil
}

// Close tears the game down unconditionally, regardless of who asks.
// Used when the table itself dissolves.
func (gs *GameSession) Close() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.phase != PhaseEnded {
		gs.endGame()
	}
}

// Resync re-sends every player their current view, typically after a
// reconnection.
func (gs *GameSession) Resync() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.phase != PhaseEnded {
		gs.broadcastState()
	}
}

// endGame closes the session. Callers hold the lock.
func (gs *GameSession) endGame() {
	gs.phase = PhaseEnded
	gs.room.Broadcast(codec.MustNewMessage(protocol.MsgGameEnd, struct{}{}))
	gs.room.GameEnded()
}

// abort kills the session on an internal failure. Callers hold the lock.
func (gs *GameSession) abort(err error) {
	log.Printf("game aborted: %v", err)
	gs.endGame()
}
