package session

import (
	"sync"

	"github.com/Izoret/Belote-WS/internal/game/bidding"
	"github.com/Izoret/Belote-WS/internal/game/card"
	"github.com/Izoret/Belote-WS/internal/game/rule"
)

// Phase of a game session.
type Phase int

const (
	PhaseDealing Phase = iota
	PhaseBidding
	PhasePlaying
	PhaseEnded
)

// Player is one seat at the table.
type Player struct {
	ID   string
	Name string
	Team int
	Seat int
	Hand []card.Card
}

// GameSession drives one deal of a four-player game: the paced deal, the
// two bidding rounds, eight tricks of play. The room owns exactly one
// session at a time and funnels all player actions through it.
type GameSession struct {
	room RoomLink
	cfg  Config

	phase      Phase
	players    []*Player // seat order, teams interleaved
	seatOf     map[string]int
	teamOf     map[string]int
	dealerSeat int

	deck       card.Deck
	turnedCard card.Card
	bidding    *bidding.State
	trumpSuit  card.Suit

	currentSeat  int // -1 while no one may act (dealing, trick pause)
	trick        []rule.Play
	tricksPlayed int

	mu sync.Mutex
}

// New seats the players and marks the dealer. Teams alternate around the
// table so partners always sit across from each other. The caller has
// already validated the 2-vs-2 split and that dealerID is one of them.
func New(room RoomLink, cfg Config, players []PlayerData, dealerID string) *GameSession {
	var team1, team2 []PlayerData
	for _, p := range players {
		if p.Team == 1 {
			team1 = append(team1, p)
		} else {
			team2 = append(team2, p)
		}
	}
	order := []PlayerData{team1[0], team2[0], team1[1], team2[1]}

	gs := &GameSession{
		room:        room,
		cfg:         cfg,
		phase:       PhaseDealing,
		seatOf:      make(map[string]int, len(order)),
		teamOf:      make(map[string]int, len(order)),
		currentSeat: -1,
	}
	for seat, p := range order {
		gs.players = append(gs.players, &Player{
			ID:   p.ID,
			Name: p.Name,
			Team: p.Team,
			Seat: seat,
		})
		gs.seatOf[p.ID] = seat
		gs.teamOf[p.ID] = p.Team
		if p.ID == dealerID {
			gs.dealerSeat = seat
		}
	}
	return gs
}

// Phase returns the session's current phase.
func (gs *GameSession) Phase() Phase {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.phase
}

// HasPlayer reports whether the given player holds a seat in this game.
func (gs *GameSession) HasPlayer(playerID string) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	_, ok := gs.seatOf[playerID]
	return ok
}

func (gs *GameSession) nextSeat(seat int) int {
	return (seat + 1) % len(gs.players)
}
