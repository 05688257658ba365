package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// BettingRoundDriver conducts exactly one street of betting: turn
// rotation, re-open semantics, and the completion test. It holds no state
// of its own between calls; every call operates on the GameState and
// DecisionSource passed to it.
type BettingRoundDriver struct {
	Decisions DecisionSource
	Sink      EventSink
	Logger    *log.Logger
}

// NewBettingRoundDriver builds a driver. A nil sink is replaced with
// NopEventSink; a nil logger is replaced with a discard logger, matching
// the engine-wide policy that nil loggers are never threaded through.
func NewBettingRoundDriver(decisions DecisionSource, sink EventSink, logger *log.Logger) *BettingRoundDriver {
	if sink == nil {
		sink = NopEventSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BettingRoundDriver{Decisions: decisions, Sink: sink, Logger: logger}
}

// handOver reports whether the hand should terminate immediately because
// at most one non-folded seat remains.
func handOver(g *GameState) bool {
	return len(g.nonFoldedSeatIDs()) <= 1
}

// Run drives the current street to completion. pending is the set of
// seats who still owe an action, initialized to every non-folded,
// non-all-in seat. Run returns true if the hand ended during this street
// (a fold left one seat standing).
func (d *BettingRoundDriver) Run(g *GameState) bool {
	pending := make(map[int]bool)
	for _, id := range g.activeSeatIDs(0) {
		pending[id] = true
	}
	if len(pending) == 0 {
		return handOver(g)
	}

	current := d.firstToAct(g)
	if current < 0 {
		return handOver(g)
	}

	for {
		legal := LegalActions(g, current)
		if len(legal) == 0 {
			delete(pending, current)
		} else {
			snapshot := g.Snapshot()
			decision := d.Decisions.Decide(current, snapshot, legal)
			decision.SeatID = current // rebind against mislabeling

			if !IsActionLegal(legal, decision) {
				err := &IllegalActionError{SeatID: current, Got: decision}
				d.Logger.Error("illegal action coerced to fold", "err", err)
				decision = Action{Kind: Fold, SeatID: current}
			}

			d.apply(g, decision, pending)
			g.recordAction(decision)
			d.Sink.Emit(EventAction, g.Snapshot())
			delete(pending, current)

			if handOver(g) {
				return true
			}
		}

		if len(pending) == 0 {
			return false
		}

		next := d.nextPending(g, current, pending)
		if next < 0 {
			return false
		}
		current = next
	}
}

// apply performs the chip movement and flag changes for a validated
// action, including the re-open predicate: did this action raise the
// current bet level? Call, Check and Fold never re-open.
func (d *BettingRoundDriver) apply(g *GameState, a Action, pending map[int]bool) {
	seat := g.Seats[a.SeatID]
	maxBetBefore := g.maxBet()

	switch a.Kind {
	case Fold:
		seat.Folded = true

	case Check:
		// no chip movement

	case Call:
		moved := seat.commit(a.Amount)
		g.Pot.Add(a.SeatID, moved)

	case Bet, Raise:
		moved := seat.commit(a.Amount)
		g.Pot.Add(a.SeatID, moved)
		g.LastRaiseIncrement = seat.CurrentBet - maxBetBefore
		d.reopen(g, pending, a.SeatID)

	case AllIn:
		moved := seat.commit(a.Amount)
		g.Pot.Add(a.SeatID, moved)
		if seat.CurrentBet >= maxBetBefore {
			if seat.CurrentBet > maxBetBefore {
				g.LastRaiseIncrement = seat.CurrentBet - maxBetBefore
			}
			d.reopen(g, pending, a.SeatID)
		}
		// Short all-in below maxBetBefore: no re-open, calls short.
	}
}

// reopen resets pending to every non-folded, non-all-in seat other than
// the seat that just raised.
func (d *BettingRoundDriver) reopen(g *GameState, pending map[int]bool, raiser int) {
	for k := range pending {
		delete(pending, k)
	}
	for _, id := range g.activeSeatIDs(0) {
		if id != raiser {
			pending[id] = true
		}
	}
}

// firstToAct returns the seat that opens the street: preflop it is the
// seat left of the big blind, postflop it is the seat left of the dealer.
// Folded and all-in seats are skipped. Returns -1 if no seat is eligible.
func (d *BettingRoundDriver) firstToAct(g *GameState) int {
	var from int
	if g.Street == Preflop {
		from = d.bigBlindSeat(g)
	} else {
		from = g.Dealer
	}
	return d.nextEligible(g, from)
}

// bigBlindSeat returns the seat that posts the big blind: one seat left of
// the small blind, which is the dealer in heads-up play and one seat left
// of the dealer otherwise.
func (d *BettingRoundDriver) bigBlindSeat(g *GameState) int {
	n := len(g.Seats)
	if n == 2 {
		// Heads-up: dealer posts SB, the other seat posts BB.
		return (g.Dealer + 1) % n
	}
	return (g.Dealer + 2) % n
}

// nextEligible walks forward from (from+1) and returns the first seat that
// is neither folded nor all-in, or -1 if the walk loops back with none
// eligible.
func (d *BettingRoundDriver) nextEligible(g *GameState, from int) int {
	n := len(g.Seats)
	for i := 1; i <= n; i++ {
		id := (from + i) % n
		if g.Seats[id].active() {
			return id
		}
	}
	return -1
}

// nextPending walks forward from (from+1) in table order and returns the
// first seat id present in pending, or -1 if none is found within one full
// lap (which should not happen while pending is non-empty).
func (d *BettingRoundDriver) nextPending(g *GameState, from int, pending map[int]bool) int {
	n := len(g.Seats)
	for i := 1; i <= n; i++ {
		id := (from + i) % n
		if pending[id] {
			return id
		}
	}
	return -1
}
