package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerPlainOrder(t *testing.T) {
	// Plain suit, low to high: 7 8 9 J Q K 10 A.
	order := []Rank{Rank7, Rank8, Rank9, RankJack, RankQueen, RankKing, Rank10, RankAce}

	for i := 1; i < len(order); i++ {
		lower := Card{Suit: Hearts, Rank: order[i-1]}
		higher := Card{Suit: Hearts, Rank: order[i]}
		assert.Less(t, Power(lower, Spades), Power(higher, Spades),
			"%v should rank below %v off-trump", lower, higher)
	}
}

func TestPowerTrumpOrder(t *testing.T) {
	// Trump suit, low to high: 7 8 Q K 10 A 9 J.
	order := []Rank{Rank7, Rank8, RankQueen, RankKing, Rank10, RankAce, Rank9, RankJack}

	for i := 1; i < len(order); i++ {
		lower := Card{Suit: Hearts, Rank: order[i-1]}
		higher := Card{Suit: Hearts, Rank: order[i]}
		assert.Less(t, Power(lower, Hearts), Power(higher, Hearts),
			"%v should rank below %v in trump", lower, higher)
	}
}

func TestPowerNineAndJackPromotion(t *testing.T) {
	nine := Card{Suit: Clubs, Rank: Rank9}
	ace := Card{Suit: Clubs, Rank: RankAce}

	// Off-trump the ace dominates, in trump the 9 jumps over it.
	assert.Greater(t, Power(ace, Hearts), Power(nine, Hearts))
	assert.Greater(t, Power(nine, Clubs), Power(ace, Clubs))
}
