package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Izoret/Belote-WS/internal/game/card"
)

// Two teams: a1/a2 vs b1/b2. The acting player is always on team 1.
var teams = map[string]int{"a1": 1, "a2": 1, "b1": 2, "b2": 2}

func c(suit card.Suit, rank card.Rank) card.Card {
	return card.Card{Suit: suit, Rank: rank}
}

func TestLegalPlaysLeading(t *testing.T) {
	hand := []card.Card{c(card.Hearts, card.Rank7), c(card.Spades, card.RankAce)}

	legal := LegalPlays(hand, nil, card.Hearts, 1, teams)
	assert.Equal(t, hand, legal)
}

func TestLegalPlaysMustFollowSuit(t *testing.T) {
	hand := []card.Card{
		c(card.Spades, card.Rank7),
		c(card.Spades, card.RankKing),
		c(card.Hearts, card.RankAce),
	}
	trick := []Play{play(card.Spades, card.Rank10, "b1")}

	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.ElementsMatch(t, []card.Card{
		c(card.Spades, card.Rank7),
		c(card.Spades, card.RankKing),
	}, legal)
}

func TestLegalPlaysTrumpLedMustOvertrump(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Rank7),
		c(card.Hearts, card.RankJack),
		c(card.Spades, card.RankAce),
	}
	trick := []Play{play(card.Hearts, card.RankAce, "b1")}

	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.Equal(t, []card.Card{c(card.Hearts, card.RankJack)}, legal)
}

func TestLegalPlaysTrumpLedNoOvertrump(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Rank7),
		c(card.Hearts, card.Rank8),
		c(card.Spades, card.RankAce),
	}
	trick := []Play{play(card.Hearts, card.RankAce, "b1")}

	// No trump above the ace besides 9/J: any trump goes.
	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.ElementsMatch(t, []card.Card{
		c(card.Hearts, card.Rank7),
		c(card.Hearts, card.Rank8),
	}, legal)
}

func TestLegalPlaysTrumpLedPartnerHolds(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Rank7),
		c(card.Hearts, card.RankJack),
	}
	trick := []Play{
		play(card.Hearts, card.Rank8, "b1"),
		play(card.Hearts, card.RankAce, "a2"), // partner holds
	}

	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.ElementsMatch(t, hand, legal)
}

func TestLegalPlaysVoidMustTrump(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Rank7),
		c(card.Diamonds, card.RankAce),
	}
	trick := []Play{play(card.Spades, card.RankKing, "b1")}

	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.Equal(t, []card.Card{c(card.Hearts, card.Rank7)}, legal)
}

func TestLegalPlaysVoidMustOvertrumpTrumpedTrick(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Rank7),
		c(card.Hearts, card.RankJack),
		c(card.Diamonds, card.RankAce),
	}
	trick := []Play{
		play(card.Spades, card.RankKing, "b1"),
		play(card.Hearts, card.RankAce, "b2"), // opponent already trumped
	}

	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.Equal(t, []card.Card{c(card.Hearts, card.RankJack)}, legal)
}

func TestLegalPlaysVoidPartnerHoldsNoObligation(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Rank7),
		c(card.Diamonds, card.RankAce),
	}
	trick := []Play{
		play(card.Spades, card.RankKing, "b1"),
		play(card.Spades, card.RankAce, "a2"), // partner holds
	}

	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.Equal(t, hand, legal)
}

func TestLegalPlaysVoidNoTrumps(t *testing.T) {
	hand := []card.Card{
		c(card.Diamonds, card.Rank8),
		c(card.Clubs, card.RankQueen),
	}
	trick := []Play{play(card.Spades, card.RankKing, "b1")}

	legal := LegalPlays(hand, trick, card.Hearts, 1, teams)
	assert.Equal(t, hand, legal)
}
