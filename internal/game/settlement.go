package game

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/card"
	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/pot"
)

// settle awards every pot slice to its eligible winners and mutates seat
// stacks in place. If only one non-folded seat exists, it receives the
// entire ledger unconditionally and the hand evaluator is never invoked.
func (c *Controller) settle(g *GameState) error {
	nonFolded := g.nonFoldedSeatIDs()
	if len(nonFolded) == 1 {
		winner := g.Seats[nonFolded[0]]
		winner.Chips += g.Pot.Total()
		c.sink.Emit(EventWinner(winner.Name), g.Snapshot())
		c.sink.Emit(EventPotAwarded, g.Snapshot())
		return nil
	}

	folded := make(map[int]bool, len(g.Seats))
	for _, s := range g.Seats {
		folded[s.SeatID] = s.Folded
	}

	c.sink.Emit(EventShowdown, g.Snapshot())

	slices := g.Pot.Slices(g.seatOrder(0), folded)
	for _, slice := range slices {
		winners, err := c.evaluateSlice(g, slice)
		if err != nil {
			return err
		}
		c.awardSlice(g, slice, winners)
	}
	c.sink.Emit(EventPotAwarded, g.Snapshot())
	return nil
}

// evaluateSlice ranks every eligible seat's best 5-of-7 hand concurrently
// (each evaluation is independent) and returns the seat ids that tied for
// best, in dealer-relative order. Collection happens after the errgroup's
// Wait barrier, so the result does not depend on goroutine completion
// order.
func (c *Controller) evaluateSlice(g *GameState, slice pot.Slice) ([]int, error) {
	results := make([]evaluator.HandResult, len(slice.Eligible))

	var eg errgroup.Group
	for i, seatID := range slice.Eligible {
		i, seatID := i, seatID
		eg.Go(func() error {
			seat := g.Seats[seatID]
			hand := make([]card.Card, 0, len(seat.HoleCards)+len(g.Community))
			hand = append(hand, seat.HoleCards...)
			hand = append(hand, g.Community...)
			r, err := evaluator.Evaluate(hand)
			if err != nil {
				return NewInvalidInputError(fmt.Sprintf("seat %d showdown hand", seatID), err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Compare(best) > 0 {
			best = r
		}
	}

	var winners []int
	for i, r := range results {
		if r.Equal(best) {
			winners = append(winners, slice.Eligible[i])
		}
	}
	return orderFromDealer(g, winners), nil
}

// awardSlice splits slice.Amount equally among winners and distributes any
// indivisible remainder one chip at a time starting with the winner
// closest to the left of the dealer. winners must already be ordered that
// way by the caller.
func (c *Controller) awardSlice(g *GameState, slice pot.Slice, winners []int) {
	share := slice.Amount / len(winners)
	remainder := slice.Amount % len(winners)
	for i, seatID := range winners {
		award := share
		if i < remainder {
			award++
		}
		g.Seats[seatID].Chips += award
	}
	if len(winners) == 1 {
		c.sink.Emit(EventWinner(g.Seats[winners[0]].Name), g.Snapshot())
	}
}

// orderFromDealer sorts seat ids by table distance from the seat
// immediately left of the dealer, ascending — the deterministic
// closest-left-of-dealer tiebreak for remainder-chip distribution.
func orderFromDealer(g *GameState, seatIDs []int) []int {
	n := len(g.Seats)
	start := (g.Dealer + 1) % n
	distance := func(id int) int {
		d := id - start
		if d < 0 {
			d += n
		}
		return d
	}
	sorted := append([]int{}, seatIDs...)
	sort.Slice(sorted, func(i, j int) bool {
		return distance(sorted[i]) < distance(sorted[j])
	})
	return sorted
}
