package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-engine/internal/card"
	"github.com/lox/holdem-engine/internal/pot"
)

// Street is one of the four betting rounds plus showdown. Progression is
// linear; there is no going back.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the street name used in logs and the textual snapshot.
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// GameState is the sole owner of a table's seats, deck and pot ledger. The
// pot and seats are owned components, not shared; every mutation goes
// through GameState or the collaborators it hands mutation access to
// (RuleEngine reads only, BettingRoundDriver and Controller mutate).
type GameState struct {
	Seats        []*Seat
	Community    []card.Card
	Pot          *pot.Ledger
	Street       Street
	Dealer       int
	CurrentToAct int
	SmallBlind   int
	BigBlind     int
	History      []Action

	deck *card.Deck

	// LastRaiseIncrement is the size of the most recent completed raise on
	// the current street, used as the floor for the next legal raise.
	// Reset to BigBlind at the start of every street.
	LastRaiseIncrement int
}

// NewGameState builds a table with the given seat names/stacks, blinds and
// dealer. Negative stacks or fewer than two seats are a construction error.
func NewGameState(names []string, stacks []int, smallBlind, bigBlind, dealer int) (*GameState, error) {
	if len(names) != len(stacks) {
		return nil, NewInvalidConstructionError("names and stacks length mismatch")
	}
	if len(names) < 2 {
		return nil, NewInvalidConstructionError("at least two seats are required")
	}
	if smallBlind <= 0 || bigBlind <= 0 {
		return nil, NewInvalidConstructionError("blinds must be positive")
	}
	if dealer < 0 || dealer >= len(names) {
		return nil, NewInvalidConstructionError("dealer seat out of range")
	}

	seats := make([]*Seat, len(names))
	for i, name := range names {
		if stacks[i] < 0 {
			return nil, NewInvalidConstructionError("negative starting stack")
		}
		seats[i] = &Seat{SeatID: i, Name: name, Chips: stacks[i]}
	}

	return &GameState{
		Seats:      seats,
		Pot:        pot.NewLedger(),
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Dealer:     dealer,
		deck:       card.NewDeck(),
	}, nil
}

// seatOrder returns every seat id in table order starting from start,
// wrapping around. Used everywhere a deterministic traversal is needed
// instead of map iteration.
func (g *GameState) seatOrder(start int) []int {
	n := len(g.Seats)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		order[i] = (start + i) % n
	}
	return order
}

// activeSeatIDs returns, in table order starting at start, the ids
// of seats that are neither folded nor all-in.
func (g *GameState) activeSeatIDs(start int) []int {
	var ids []int
	for _, id := range g.seatOrder(start) {
		if g.Seats[id].active() {
			ids = append(ids, id)
		}
	}
	return ids
}

// nonFoldedSeatIDs returns every seat id that has not folded, in table
// order starting at seat 0.
func (g *GameState) nonFoldedSeatIDs() []int {
	var ids []int
	for _, s := range g.Seats {
		if !s.Folded {
			ids = append(ids, s.SeatID)
		}
	}
	return ids
}

// maxBet returns the highest CurrentBet among all seats.
func (g *GameState) maxBet() int {
	max := 0
	for _, s := range g.Seats {
		if s.CurrentBet > max {
			max = s.CurrentBet
		}
	}
	return max
}

// resetForHand clears per-hand state on the aggregate and every seat,
// preserving names, ids, stacks, blinds and dealer.
func (g *GameState) resetForHand() {
	g.Community = nil
	g.History = nil
	g.Pot.Reset()
	g.Street = Preflop
	g.LastRaiseIncrement = g.BigBlind
	for _, s := range g.Seats {
		s.resetForHand()
	}
}

// resetForStreet clears the per-round bet counters and re-opens raising.
func (g *GameState) resetForStreet() {
	g.LastRaiseIncrement = g.BigBlind
	for _, s := range g.Seats {
		s.resetForStreet()
	}
}

// recordAction appends to history. History append must precede event
// emission, which must precede removal of the seat from pending — the
// caller (BettingRoundDriver) is responsible for that ordering.
func (g *GameState) recordAction(a Action) {
	g.History = append(g.History, a)
}

// SeatView is an immutable, value-typed view of a Seat for inclusion in a
// Snapshot.
type SeatView struct {
	SeatID     int
	Name       string
	Chips      int
	HoleCards  []card.Card
	Folded     bool
	AllIn      bool
	CurrentBet int
}

// Snapshot is an immutable, deep-copied view of GameState at the moment of
// emission. Observers may retain a Snapshot indefinitely; it shares no
// backing storage with the live GameState.
type Snapshot struct {
	Seats        []SeatView
	Community    []card.Card
	PotTotal     int
	Street       Street
	Dealer       int
	CurrentToAct int
	SmallBlind   int
	BigBlind     int
	History      []Action
}

// Snapshot deep-copies the current state for handoff to a DecisionSource or
// EventSink.
func (g *GameState) Snapshot() Snapshot {
	seats := make([]SeatView, len(g.Seats))
	for i, s := range g.Seats {
		hole := make([]card.Card, len(s.HoleCards))
		copy(hole, s.HoleCards)
		seats[i] = SeatView{
			SeatID:     s.SeatID,
			Name:       s.Name,
			Chips:      s.Chips,
			HoleCards:  hole,
			Folded:     s.Folded,
			AllIn:      s.AllIn,
			CurrentBet: s.CurrentBet,
		}
	}
	community := make([]card.Card, len(g.Community))
	copy(community, g.Community)
	history := make([]Action, len(g.History))
	copy(history, g.History)

	return Snapshot{
		Seats:        seats,
		Community:    community,
		PotTotal:     g.Pot.Total(),
		Street:       g.Street,
		Dealer:       g.Dealer,
		CurrentToAct: g.CurrentToAct,
		SmallBlind:   g.SmallBlind,
		BigBlind:     g.BigBlind,
		History:      history,
	}
}

// String renders a human-readable debug form: street, dealer, blinds, pot
// total, community cards, each seat, and the action history. Not a wire
// format; intended for debugging and replay.
func (g *GameState) String() string {
	return g.Snapshot().String()
}

// String renders the same textual form as GameState.String, from a
// detached Snapshot.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "street=%s dealer=%d blinds=%d/%d pot=%d\n", s.Street, s.Dealer, s.SmallBlind, s.BigBlind, s.PotTotal)
	fmt.Fprintf(&b, "community=%s\n", cardsString(s.Community))
	for _, seat := range s.Seats {
		fmt.Fprintf(&b, "  seat %d %-12s chips=%-6d bet=%-6d folded=%-5t allin=%-5t hole=%s\n",
			seat.SeatID, seat.Name, seat.Chips, seat.CurrentBet, seat.Folded, seat.AllIn, cardsString(seat.HoleCards))
	}
	for _, a := range s.History {
		fmt.Fprintf(&b, "  %s\n", a)
	}
	return b.String()
}

func cardsString(cards []card.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
