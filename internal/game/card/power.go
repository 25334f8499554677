package card

// Trick-taking power per rank. Two total orders exist: one for the trump
// suit, one for everything else. In the trump order the 9 and the jack are
// promoted above the face cards, the 10 and the ace.
//
//	plain (low→high): 7 8 9 J Q K 10 A
//	trump (low→high): 7 8 Q K 10 A 9 J
var (
	plainPower = map[Rank]int{
		Rank7:     1,
		Rank8:     2,
		Rank9:     3,
		RankJack:  4,
		RankQueen: 5,
		RankKing:  6,
		Rank10:    7,
		RankAce:   8,
	}

	trumpPower = map[Rank]int{
		Rank7:     1,
		Rank8:     2,
		RankQueen: 5,
		RankKing:  6,
		Rank10:    7,
		RankAce:   8,
		Rank9:     9,
		RankJack:  10,
	}
)

// Power returns the card's trick-taking power given the trump suit.
// The value only orders cards within the same suit context; comparing
// across suits is meaningless without the trump-priority rule.
func Power(c Card, trump Suit) int {
	if c.Suit == trump {
		return trumpPower[c.Rank]
	}
	return plainPower[c.Rank]
}
