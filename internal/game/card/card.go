package card

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Suit of a card.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Rank of a card. The Belote deck runs 7 through ace.
type Rank int

const (
	Rank7 Rank = iota
	Rank8
	Rank9
	Rank10
	RankJack
	RankQueen
	RankKing
	RankAce
)

// suitNames are the wire names, shared with the original web client.
var suitNames = map[Suit]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
}

var rankNames = map[Rank]string{
	Rank7:     "7",
	Rank8:     "8",
	Rank9:     "9",
	Rank10:    "10",
	RankJack:  "jack",
	RankQueen: "queen",
	RankKing:  "king",
	RankAce:   "ace",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("suit(%d)", int(s))
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// SuitFromName resolves a wire suit name.
func SuitFromName(name string) (Suit, bool) {
	for s, n := range suitNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// RankFromName resolves a wire rank name.
func RankFromName(name string) (Rank, bool) {
	for r, n := range rankNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// Suits in fixed enumeration order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Card is an immutable (suit, rank) value; a deck holds each combination once.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// ErrEmptyDeck means a draw was attempted with no cards left. The dealing
// arithmetic (8 per player plus one turned card) makes this unreachable;
// hitting it is an internal-consistency bug, not a user error.
var ErrEmptyDeck = errors.New("draw from empty deck")

// DeckSize is the number of cards in a full Belote deck.
const DeckSize = 32

// Deck is an ordered pile of cards. Cards only ever leave from the end.
type Deck []Card

// NewDeck builds the 32-card deck in fixed enumeration order.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, s := range Suits() {
		for r := Rank7; r <= RankAce; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes the deck in place with an unbiased Fisher–Yates:
// each position swaps with a uniformly chosen index at or below it.
func (d Deck) Shuffle() {
	for i := len(d) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw removes and returns the top (last) card.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return c, nil
}
