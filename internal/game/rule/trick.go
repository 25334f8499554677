package rule

import (
	"github.com/Izoret/Belote-WS/internal/game/card"
)

// Play is one card laid into a trick, in turn order.
type Play struct {
	Card     card.Card
	PlayerID string
}

// TrickMaster returns the play currently holding the trick, or nil for an
// empty trick. It serves both as the live "who is winning so far" query
// while a trick builds up and as the final-winner query at 4 plays.
//
// A later play overtakes the holder when it is trump against a non-trump
// holder, or when it follows the holder's suit with strictly greater power.
// An off-suit non-trump card never overtakes. Ties cannot occur: every card
// is unique.
func TrickMaster(trick []Play, trump card.Suit) *Play {
	if len(trick) == 0 {
		return nil
	}

	holder := &trick[0]
	for i := 1; i < len(trick); i++ {
		current := &trick[i]
		switch {
		case current.Card.Suit == trump && holder.Card.Suit != trump:
			holder = current
		case current.Card.Suit == holder.Card.Suit:
			if card.Power(current.Card, trump) > card.Power(holder.Card, trump) {
				holder = current
			}
		}
	}
	return holder
}
