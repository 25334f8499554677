package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	seen := make(map[Card]bool)
	perSuit := make(map[Suit]int)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
		perSuit[c.Suit]++
	}
	for _, s := range Suits() {
		assert.Equal(t, 8, perSuit[s], "suit %v", s)
	}
}

func TestShuffleKeepsAllCards(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle()

	require.Len(t, deck, DeckSize)
	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c])
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
}

func TestDraw(t *testing.T) {
	deck := Deck{
		{Suit: Hearts, Rank: Rank7},
		{Suit: Spades, Rank: RankAce},
	}

	c, err := deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, Card{Suit: Spades, Rank: RankAce}, c)
	assert.Len(t, deck, 1)

	c, err = deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, Card{Suit: Hearts, Rank: Rank7}, c)
	assert.Empty(t, deck)

	_, err = deck.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestNameRoundTrips(t *testing.T) {
	for _, s := range Suits() {
		got, ok := SuitFromName(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	for r := Rank7; r <= RankAce; r++ {
		got, ok := RankFromName(r.String())
		require.True(t, ok)
		assert.Equal(t, r, got)
	}

	_, ok := SuitFromName("stars")
	assert.False(t, ok)
	_, ok = RankFromName("11")
	assert.False(t, ok)
}

func TestCardString(t *testing.T) {
	c := Card{Suit: Hearts, Rank: RankJack}
	assert.Equal(t, "jack of hearts", c.String())
}
