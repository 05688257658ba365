package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/card"
)

// Controller drives the full lifecycle of one hand: reset, shuffle, post
// blinds, deal, run the four streets, showdown and settle. Rotating the
// dealer between hands is the caller's responsibility.
type Controller struct {
	decisions DecisionSource
	shuffler  Shuffler
	sink      EventSink
	logger    *log.Logger
	clock     quartz.Clock
}

// NewController builds a hand controller. A nil decision source or
// shuffler is a construction error. A nil sink defaults to NopEventSink; a
// nil logger defaults to a discard logger; a nil clock defaults to the
// real wall clock.
func NewController(decisions DecisionSource, shuffler Shuffler, sink EventSink, logger *log.Logger, clock quartz.Clock) (*Controller, error) {
	if decisions == nil {
		return nil, NewInvalidConstructionError("nil decision source")
	}
	if shuffler == nil {
		return nil, NewInvalidConstructionError("nil shuffler")
	}
	if sink == nil {
		sink = NopEventSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Controller{decisions: decisions, shuffler: shuffler, sink: sink, logger: logger, clock: clock}, nil
}

// PlayHand runs one complete hand against g, mutating it in place. Errors
// are surfaced to the caller; intermediate partial state is permitted to
// remain, since the hand is not atomic. Callers replaying after an error
// must reset state themselves.
func (c *Controller) PlayHand(g *GameState) error {
	g.resetForHand()
	g.deck.Reset(c.shuffler)
	c.emit(g, EventHandStart)

	c.postBlinds(g)

	c.dealHoleCards(g)
	c.emit(g, EventDealHole)

	driver := NewBettingRoundDriver(c.decisions, c.sink, c.logger)

	g.Street = Preflop
	c.emit(g, EventStreetPreflop)
	if over := driver.Run(g); over {
		return c.settle(g)
	}

	for _, street := range []Street{Flop, Turn, River} {
		if handOver(g) {
			break
		}
		g.Street = street
		g.resetForStreet()
		c.dealStreet(g, street)
		c.emit(g, streetTag(street))

		if countActive(g) <= 1 {
			// Multiple seats remain in the hand but at most one can still
			// voluntarily act (the rest are all-in): deal out the
			// remaining streets without further decisions.
			continue
		}
		if over := driver.Run(g); over {
			break
		}
	}

	g.Street = Showdown
	return c.settle(g)
}

// emit snapshots g and forwards tag to the sink, logging an envelope
// stamped with the controller's clock so replay tooling built on the log
// can order events even across sinks that don't timestamp themselves.
func (c *Controller) emit(g *GameState, tag EventTag) {
	envelope := EventEnvelope{Tag: tag, At: c.clock.Now()}
	c.logger.Debug("event", "tag", envelope.Tag, "at", envelope.At, "street", g.Street)
	c.sink.Emit(tag, g.Snapshot())
}

func streetTag(s Street) EventTag {
	switch s {
	case Flop:
		return EventStreetFlop
	case Turn:
		return EventStreetTurn
	case River:
		return EventStreetRiver
	default:
		return EventStreetPreflop
	}
}

func countActive(g *GameState) int {
	count := 0
	for _, s := range g.Seats {
		if s.active() {
			count++
		}
	}
	return count
}

// postBlinds posts small blind then big blind, each a forced bet clipped
// to the posting seat's stack. A blind that exceeds the stack is a partial
// contribution that sets all-in.
func (c *Controller) postBlinds(g *GameState) {
	n := len(g.Seats)
	var sbSeat, bbSeat int
	if n == 2 {
		sbSeat = g.Dealer
		bbSeat = (g.Dealer + 1) % n
	} else {
		sbSeat = (g.Dealer + 1) % n
		bbSeat = (g.Dealer + 2) % n
	}

	sb := g.Seats[sbSeat]
	moved := sb.commit(g.SmallBlind)
	g.Pot.Add(sbSeat, moved)
	c.emit(g, EventPostSB)

	bb := g.Seats[bbSeat]
	moved = bb.commit(g.BigBlind)
	g.Pot.Add(bbSeat, moved)
	c.emit(g, EventPostBB)
}

// dealHoleCards deals two hole cards per seat in two passes starting left
// of the dealer, mirroring how a dealer physically deals around the table
// twice rather than handing each player both cards at once.
func (c *Controller) dealHoleCards(g *GameState) {
	order := g.seatOrder(g.Dealer + 1)
	for pass := 0; pass < 2; pass++ {
		for _, id := range order {
			g.Seats[id].dealHole(g.deck.Deal(1)[0])
		}
	}
}

// dealStreet burns one card, then deals the mandated number of community
// cards for street.
func (c *Controller) dealStreet(g *GameState, street Street) {
	g.deck.Deal(1) // burn

	var n int
	switch street {
	case Flop:
		n = 3
	case Turn, River:
		n = 1
	}
	dealt := g.deck.Deal(n)
	cards := make([]card.Card, len(dealt))
	copy(cards, dealt)
	g.Community = append(g.Community, cards...)
}
