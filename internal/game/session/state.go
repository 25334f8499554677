package session

import (
	"github.com/Izoret/Belote-WS/internal/game/card"
	"github.com/Izoret/Belote-WS/internal/game/rule"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
	"github.com/Izoret/Belote-WS/internal/protocol/convert"
)

// broadcastState sends each player their personal view of the game: their
// own cards with legality flags, everyone else as hand counts. Callers
// hold the lock.
func (gs *GameSession) broadcastState() {
	players := make([]protocol.GamePlayerInfo, len(gs.players))
	for i, p := range gs.players {
		players[i] = protocol.GamePlayerInfo{
			ID:       p.ID,
			Name:     p.Name,
			Team:     p.Team,
			HandSize: len(p.Hand),
		}
	}

	bid := protocol.BiddingInfo{Phase: "inactive"}
	if gs.bidding != nil {
		bid.Phase = gs.bidding.Phase.String()
		if gs.bidding.TurnedCard != nil {
			info := convert.CardToInfo(*gs.bidding.TurnedCard)
			bid.TurnedCard = &info
		}
		if gs.bidding.TakerSeat >= 0 {
			bid.TakerID = gs.players[gs.bidding.TakerSeat].ID
		}
	}

	trick := make([]protocol.TrickPlay, len(gs.trick))
	for i, play := range gs.trick {
		trick[i] = protocol.TrickPlay{
			Card:     convert.CardToInfo(play.Card),
			PlayerID: play.PlayerID,
		}
	}

	var trumpSuit string
	if gs.phase == PhasePlaying || (gs.bidding != nil && gs.bidding.TakerSeat >= 0) {
		trumpSuit = gs.trumpSuit.String()
	}

	var currentID string
	switch {
	case gs.phase == PhaseBidding:
		currentID = gs.players[gs.bidding.CurrentSeat].ID
	case gs.phase == PhasePlaying && gs.currentSeat >= 0:
		currentID = gs.players[gs.currentSeat].ID
	}

	for _, p := range gs.players {
		var legal []card.Card
		if gs.phase == PhasePlaying && p.Seat == gs.currentSeat {
			legal = rule.LegalPlays(p.Hand, gs.trick, gs.trumpSuit, p.Team, gs.teamOf)
		}
		payload := protocol.GameStatePayload{
			MyHand:          convert.HandToInfos(p.Hand, legal),
			Players:         players,
			DealerID:        gs.players[gs.dealerSeat].ID,
			Bidding:         bid,
			TrumpSuit:       trumpSuit,
			CurrentPlayerID: currentID,
			Tricks:          protocol.TricksInfo{CurrentTrick: trick},
		}
		gs.room.SendTo(p.ID, codec.MustNewMessage(protocol.MsgGameState, payload))
	}
}
