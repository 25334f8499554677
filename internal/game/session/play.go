package session

import (
	"time"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/card"
	"github.com/Izoret/Belote-WS/internal/game/rule"
)

const tricksPerDeal = 8

// HandlePlayCard plays one card from the acting player's hand into the
// current trick. The card must be in hand and in the legal set for the
// trick. A fourth card closes the trick: it stays on the table for the
// configured pause, then the winner leads the next one. The eighth trick
// ends the game.
func (gs *GameSession) HandlePlayCard(playerID string, c card.Card) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.phase != PhasePlaying {
		return apperrors.ErrNoActiveGame
	}
	seat, ok := gs.seatOf[playerID]
	if !ok {
		return apperrors.ErrNotInRoom
	}
	if seat != gs.currentSeat {
		return apperrors.ErrNotYourTurn
	}

	p := gs.players[seat]
	idx := indexOf(p.Hand, c)
	if idx < 0 {
		return apperrors.ErrCardNotInHand
	}
	legal := rule.LegalPlays(p.Hand, gs.trick, gs.trumpSuit, p.Team, gs.teamOf)
	if indexOf(legal, c) < 0 {
		return apperrors.ErrCardNotPlayable
	}

	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	gs.trick = append(gs.trick, rule.Play{Card: c, PlayerID: playerID})

	if len(gs.trick) < len(gs.players) {
		gs.currentSeat = gs.nextSeat(seat)
		gs.broadcastState()
		return nil
	}

	// Trick complete. Freeze the table so the full trick stays visible,
	// then let the winner lead.
	gs.tricksPlayed++
	gs.currentSeat = -1
	gs.broadcastState()

	winnerSeat := gs.seatOf[rule.TrickMaster(gs.trick, gs.trumpSuit).PlayerID]
	go gs.finishTrick(winnerSeat)
	return nil
}

func (gs *GameSession) finishTrick(winnerSeat int) {
	time.Sleep(gs.cfg.TrickPause)

	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.phase != PhasePlaying {
		return
	}

	gs.trick = nil
	if gs.tricksPlayed == tricksPerDeal {
		gs.endGame()
		return
	}
	gs.currentSeat = winnerSeat
	gs.broadcastState()
}

func indexOf(cards []card.Card, c card.Card) int {
	for i, cc := range cards {
		if cc == c {
			return i
		}
	}
	return -1
}
