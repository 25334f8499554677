package bidding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/game/card"
)

func turned() card.Card {
	return card.Card{Suit: card.Hearts, Rank: card.RankKing}
}

func TestNewOpensLeftOfDealer(t *testing.T) {
	s := New(turned(), 2)

	assert.Equal(t, PhaseRound1, s.Phase)
	assert.Equal(t, 3, s.CurrentSeat)
	assert.Equal(t, -1, s.TakerSeat)
	require.NotNil(t, s.TurnedCard)
	assert.Equal(t, card.Hearts, s.TurnedCard.Suit)
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("pass")
	require.NoError(t, err)
	assert.Equal(t, ActPass, a.Kind)

	a, err = ParseAction("take")
	require.NoError(t, err)
	assert.Equal(t, ActTake, a.Kind)

	a, err = ParseAction("spades")
	require.NoError(t, err)
	assert.Equal(t, ActChooseSuit, a.Kind)
	assert.Equal(t, card.Spades, a.Suit)

	_, err = ParseAction("double")
	assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
}

func TestOutOfTurn(t *testing.T) {
	s := New(turned(), 0)

	_, err := s.Act(3, Action{Kind: ActPass})
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
	assert.Equal(t, 1, s.CurrentSeat)
}

func TestRound1Take(t *testing.T) {
	s := New(turned(), 0)

	out, err := s.Act(1, Action{Kind: ActPass})
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, out)

	out, err = s.Act(2, Action{Kind: ActTake})
	require.NoError(t, err)
	assert.Equal(t, OutcomeResolved, out)
	assert.Equal(t, PhaseResolved, s.Phase)
	assert.Equal(t, card.Hearts, s.TrumpSuit)
	assert.Equal(t, 2, s.TakerSeat)
	assert.Nil(t, s.TurnedCard)
}

func TestRound1SuitChoiceRejected(t *testing.T) {
	s := New(turned(), 0)

	_, err := s.Act(1, Action{Kind: ActChooseSuit, Suit: card.Spades})
	assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
	assert.Equal(t, PhaseRound1, s.Phase)
}

func TestDealerPassOpensRound2(t *testing.T) {
	s := New(turned(), 0)

	for seat := 1; seat <= 3; seat++ {
		out, err := s.Act(seat, Action{Kind: ActPass})
		require.NoError(t, err)
		assert.Equal(t, OutcomeContinue, out)
		assert.Equal(t, PhaseRound1, s.Phase)
	}

	// Dealer's pass closes round 1, and the turn wraps back to seat 1.
	out, err := s.Act(0, Action{Kind: ActPass})
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, out)
	assert.Equal(t, PhaseRound2, s.Phase)
	assert.Equal(t, 1, s.CurrentSeat)
}

func TestRound2ChooseSuit(t *testing.T) {
	s := round2State(t, 0)

	out, err := s.Act(1, Action{Kind: ActChooseSuit, Suit: card.Clubs})
	require.NoError(t, err)
	assert.Equal(t, OutcomeResolved, out)
	assert.Equal(t, card.Clubs, s.TrumpSuit)
	assert.Equal(t, 1, s.TakerSeat)
}

func TestRound2RejectsTurnedSuit(t *testing.T) {
	s := round2State(t, 0)

	_, err := s.Act(1, Action{Kind: ActChooseSuit, Suit: card.Hearts})
	assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
	assert.Equal(t, PhaseRound2, s.Phase)
	assert.Equal(t, 1, s.CurrentSeat)
}

func TestRound2TakeRejected(t *testing.T) {
	s := round2State(t, 0)

	_, err := s.Act(1, Action{Kind: ActTake})
	assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
}

func TestRound2AllPassAborts(t *testing.T) {
	s := round2State(t, 0)

	for seat := 1; seat <= 3; seat++ {
		out, err := s.Act(seat, Action{Kind: ActPass})
		require.NoError(t, err)
		assert.Equal(t, OutcomeContinue, out)
	}

	out, err := s.Act(0, Action{Kind: ActPass})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAborted, out)
	assert.Equal(t, PhaseInactive, s.Phase)
}

func round2State(t *testing.T, dealerSeat int) *State {
	t.Helper()

	s := New(turned(), dealerSeat)
	for i := 1; i <= 4; i++ {
		_, err := s.Act((dealerSeat+i)%4, Action{Kind: ActPass})
		require.NoError(t, err)
	}
	require.Equal(t, PhaseRound2, s.Phase)
	return s
}
