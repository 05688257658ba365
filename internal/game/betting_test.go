package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcSource adapts a plain function to DecisionSource, letting tests
// script behaviour inline without a dedicated type per scenario.
type funcSource func(seatID int, snapshot Snapshot, legal []Action) Action

func (f funcSource) Decide(seatID int, snapshot Snapshot, legal []Action) Action {
	return f(seatID, snapshot, legal)
}

// firstOf returns the first legal action matching one of kinds, or the
// first legal action if none match.
func firstOf(legal []Action, kinds ...ActionKind) Action {
	for _, k := range kinds {
		for _, a := range legal {
			if a.Kind == k {
				return a
			}
		}
	}
	return legal[0]
}

func checkOrCallSource() DecisionSource {
	return funcSource(func(seatID int, _ Snapshot, legal []Action) Action {
		return firstOf(legal, Check, Call)
	})
}

func testDriver(decisions DecisionSource) *BettingRoundDriver {
	return NewBettingRoundDriver(decisions, nil, log.New(io.Discard))
}

func TestBettingRoundAllCheckEndsWithEmptyPending(t *testing.T) {
	g := newTestState(t, []int{1000, 1000, 1000})
	d := testDriver(checkOrCallSource())

	over := d.Run(g)

	assert.False(t, over)
	for _, s := range g.Seats {
		assert.False(t, s.Folded)
		assert.Equal(t, 0, s.CurrentBet)
	}
}

func TestBettingRoundFoldEndsHandImmediately(t *testing.T) {
	g := newTestState(t, []int{1000, 1000})
	g.Street = Preflop
	// Heads up preflop: dealer (0) posts SB and acts first.
	g.Seats[0].CurrentBet = 5
	g.Seats[1].CurrentBet = 10

	foldFirst := funcSource(func(seatID int, _ Snapshot, legal []Action) Action {
		return firstOf(legal, Fold)
	})
	d := testDriver(foldFirst)

	over := d.Run(g)

	require.True(t, over)
	assert.True(t, g.Seats[0].Folded)
}

func TestBettingRoundReopensOnRaise(t *testing.T) {
	g := newTestState(t, []int{1000, 1000, 1000})
	calls := 0
	source := funcSource(func(seatID int, _ Snapshot, legal []Action) Action {
		calls++
		if calls == 1 {
			return firstOf(legal, Bet)
		}
		return firstOf(legal, Check, Call)
	})
	d := testDriver(source)

	over := d.Run(g)

	assert.False(t, over)
	// Everyone called the bet; no seat should owe more.
	maxBet := g.maxBet()
	for _, s := range g.Seats {
		if !s.Folded {
			assert.Equal(t, maxBet, s.CurrentBet)
		}
	}
}

func TestBettingRoundShortAllInDoesNotReopen(t *testing.T) {
	// Seat 0 bets 100, seat 1 goes all-in short (50 < 100), seat 2 calls
	// the full 100. Seat 0 must not get another turn since the short
	// all-in never raised the bet level.
	g := newTestState(t, []int{1000, 50, 1000})
	turn := 0
	source := funcSource(func(seatID int, _ Snapshot, legal []Action) Action {
		turn++
		switch turn {
		case 1:
			for _, a := range legal {
				if a.Kind == Bet {
					return Action{Kind: Bet, SeatID: seatID, Amount: 100}
				}
			}
		case 2:
			return firstOf(legal, AllIn)
		case 3:
			return firstOf(legal, Call)
		}
		t.Fatalf("unexpected extra turn %d for seat %d", turn, seatID)
		return Action{}
	})
	d := testDriver(source)

	over := d.Run(g)

	assert.False(t, over)
	assert.Equal(t, 3, turn)
	assert.True(t, g.Seats[1].AllIn)
	assert.Equal(t, 50, g.Seats[1].CurrentBet)
}

func TestBettingRoundIllegalActionCoercesToFold(t *testing.T) {
	g := newTestState(t, []int{1000, 1000})
	g.Street = Preflop
	g.Seats[0].CurrentBet = 5
	g.Seats[1].CurrentBet = 10

	bogus := funcSource(func(seatID int, _ Snapshot, _ []Action) Action {
		return Action{Kind: Raise, SeatID: seatID, Amount: -5}
	})
	d := testDriver(bogus)

	over := d.Run(g)

	require.True(t, over)
	assert.True(t, g.Seats[0].Folded)
}
