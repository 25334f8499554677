package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Izoret/Belote-WS/internal/game/card"
	"github.com/Izoret/Belote-WS/internal/protocol"
)

func TestCardRoundTrip(t *testing.T) {
	c := card.Card{Suit: card.Hearts, Rank: card.RankJack}

	info := CardToInfo(c)
	assert.Equal(t, protocol.CardInfo{Suit: "hearts", Rank: "jack"}, info)

	back, ok := InfoToCard(info)
	require.True(t, ok)
	assert.Equal(t, c, back)
}

func TestInfoToCardRejectsUnknownNames(t *testing.T) {
	_, ok := InfoToCard(protocol.CardInfo{Suit: "stars", Rank: "jack"})
	assert.False(t, ok)

	_, ok = InfoToCard(protocol.CardInfo{Suit: "hearts", Rank: "eleven"})
	assert.False(t, ok)
}

func TestHandToInfosMarksLegalCards(t *testing.T) {
	hand := []card.Card{
		{Suit: card.Hearts, Rank: card.Rank7},
		{Suit: card.Spades, Rank: card.RankAce},
		{Suit: card.Clubs, Rank: card.RankQueen},
	}
	legal := []card.Card{hand[1]}

	infos := HandToInfos(hand, legal)
	require.Len(t, infos, 3)
	assert.False(t, infos[0].Playable)
	assert.True(t, infos[1].Playable)
	assert.False(t, infos[2].Playable)
	assert.Equal(t, "ace", infos[1].Rank)
	assert.Equal(t, "spades", infos[1].Suit)
}

func TestCardsToInfosKeepsOrder(t *testing.T) {
	cards := []card.Card{
		{Suit: card.Diamonds, Rank: card.Rank10},
		{Suit: card.Clubs, Rank: card.Rank9},
	}

	infos := CardsToInfos(cards)
	require.Len(t, infos, 2)
	assert.Equal(t, "diamonds", infos[0].Suit)
	assert.Equal(t, "9", infos[1].Rank)
}
