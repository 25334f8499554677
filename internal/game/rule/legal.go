package rule

import (
	"github.com/Izoret/Belote-WS/internal/game/card"
)

// LegalPlays computes the subset of hand that may legally be played into the
// trick: follow the led suit when possible, trump when void (unless the
// partner already holds the trick), and overtrump when trumping is forced
// and a higher trump is held.
//
// teamOf maps player IDs to their team; actingTeam is the team of the player
// about to play. Only other players' played cards are read, never mutated.
func LegalPlays(hand []card.Card, trick []Play, trump card.Suit, actingTeam int, teamOf map[string]int) []card.Card {
	if len(trick) == 0 {
		// Leading: anything goes.
		return hand
	}

	ledSuit := trick[0].Card.Suit
	holder := TrickMaster(trick, trump)
	partnerHolds := teamOf[holder.PlayerID] == actingTeam

	var ledCards, trumps, overtaking []card.Card
	holderPower := card.Power(holder.Card, trump)
	for _, c := range hand {
		if c.Suit == ledSuit {
			ledCards = append(ledCards, c)
		}
		if c.Suit == trump {
			trumps = append(trumps, c)
			if holder.Card.Suit == trump && card.Power(c, trump) > holderPower {
				overtaking = append(overtaking, c)
			}
		}
	}

	if ledSuit == trump {
		if len(ledCards) == 0 {
			// Void in trump on a trump lead: no way to follow.
			return hand
		}
		// Must follow trump; overtrump when possible and the partner is
		// not already holding the trick.
		if !partnerHolds && len(overtaking) > 0 {
			return overtaking
		}
		return trumps
	}

	// Plain-suit lead: following the led suit always comes first.
	if len(ledCards) > 0 {
		return ledCards
	}

	// Void in the led suit. No obligation at all when the partner holds
	// the trick, or when there is nothing to trump with.
	if partnerHolds || len(trumps) == 0 {
		return hand
	}

	// Forced to trump: overtrump when possible.
	if len(overtaking) > 0 {
		return overtaking
	}
	return trumps
}
