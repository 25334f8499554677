package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Izoret/Belote-WS/internal/game/card"
)

func play(suit card.Suit, rank card.Rank, playerID string) Play {
	return Play{Card: card.Card{Suit: suit, Rank: rank}, PlayerID: playerID}
}

func TestTrickMasterEmpty(t *testing.T) {
	assert.Nil(t, TrickMaster(nil, card.Hearts))
}

func TestTrickMasterSameSuit(t *testing.T) {
	trick := []Play{
		play(card.Spades, card.RankKing, "a"),
		play(card.Spades, card.Rank10, "b"),
		play(card.Spades, card.Rank8, "c"),
	}

	holder := TrickMaster(trick, card.Hearts)
	require.NotNil(t, holder)
	assert.Equal(t, "b", holder.PlayerID) // 10 outranks king off-trump
}

func TestTrickMasterOffSuitNeverTakes(t *testing.T) {
	trick := []Play{
		play(card.Spades, card.Rank7, "a"),
		play(card.Diamonds, card.RankAce, "b"),
	}

	holder := TrickMaster(trick, card.Hearts)
	assert.Equal(t, "a", holder.PlayerID)
}

func TestTrickMasterTrumpBeatsPlain(t *testing.T) {
	trick := []Play{
		play(card.Spades, card.RankAce, "a"),
		play(card.Hearts, card.Rank7, "b"),
	}

	holder := TrickMaster(trick, card.Hearts)
	assert.Equal(t, "b", holder.PlayerID)
}

func TestTrickMasterHigherTrumpOvertakes(t *testing.T) {
	trick := []Play{
		play(card.Spades, card.RankQueen, "a"),
		play(card.Hearts, card.RankAce, "b"),
		play(card.Hearts, card.Rank9, "c"), // trump 9 above trump ace
		play(card.Hearts, card.RankKing, "d"),
	}

	holder := TrickMaster(trick, card.Hearts)
	assert.Equal(t, "c", holder.PlayerID)
}

func TestTrickMasterTrumpJackHighest(t *testing.T) {
	trick := []Play{
		play(card.Hearts, card.RankAce, "a"),
		play(card.Hearts, card.Rank9, "b"),
		play(card.Hearts, card.RankJack, "c"),
	}

	holder := TrickMaster(trick, card.Hearts)
	assert.Equal(t, "c", holder.PlayerID)
}
