package convert

import (
	"github.com/Izoret/Belote-WS/internal/game/card"
	"github.com/Izoret/Belote-WS/internal/protocol"
)

// CardToInfo renders a card for the wire.
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Suit: c.Suit.String(),
		Rank: c.Rank.String(),
	}
}

// InfoToCard parses a wire card. False means an unknown suit or rank name.
func InfoToCard(info protocol.CardInfo) (card.Card, bool) {
	suit, ok := card.SuitFromName(info.Suit)
	if !ok {
		return card.Card{}, false
	}
	rank, ok := card.RankFromName(info.Rank)
	if !ok {
		return card.Card{}, false
	}
	return card.Card{Suit: suit, Rank: rank}, true
}

// CardsToInfos renders a card slice in order.
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// HandToInfos renders the recipient's own hand, marking the cards that are
// in the legal set for the current trick.
func HandToInfos(hand, legal []card.Card) []protocol.HandCard {
	legalSet := make(map[card.Card]struct{}, len(legal))
	for _, c := range legal {
		legalSet[c] = struct{}{}
	}
	infos := make([]protocol.HandCard, len(hand))
	for i, c := range hand {
		_, playable := legalSet[c]
		infos[i] = protocol.HandCard{
			Suit:     c.Suit.String(),
			Rank:     c.Rank.String(),
			Playable: playable,
		}
	}
	return infos
}
