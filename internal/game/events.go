package game

import "time"

// EventTag labels what kind of state mutation just happened. Observers
// switch on the tag rather than inspecting the snapshot diff themselves.
type EventTag string

const (
	EventHandStart     EventTag = "hand_start"
	EventPostSB        EventTag = "post_sb"
	EventPostBB        EventTag = "post_bb"
	EventDealHole      EventTag = "deal_hole_cards"
	EventStreetPreflop EventTag = "street_preflop"
	EventStreetFlop    EventTag = "street_flop"
	EventStreetTurn    EventTag = "street_turn"
	EventStreetRiver   EventTag = "street_river"
	EventAction        EventTag = "action"
	EventShowdown      EventTag = "showdown"
	EventPotAwarded    EventTag = "pot_awarded"
)

// EventWinner builds the "winner_{name}" tag spec.md §6 names, since the
// seat name is not known until award time.
func EventWinner(name string) EventTag {
	return EventTag("winner_" + name)
}

// EventEnvelope records an emitted event's tag and the clock time it was
// emitted, so replay tooling can order events from multiple sinks.
type EventEnvelope struct {
	Tag EventTag
	At  time.Time
}

// EventSink is the fire-and-forget observer capability. Emit is called
// after each mutation of interest, strictly after the history append that
// produced it. The passed Snapshot is already a deep copy of the state, so
// implementations may retain it past the call.
type EventSink interface {
	Emit(tag EventTag, snapshot Snapshot)
}

// NopEventSink discards every event. Controllers default to it when no
// sink is supplied, since the event sink is an optional capability.
type NopEventSink struct{}

// Emit implements EventSink by doing nothing.
func (NopEventSink) Emit(EventTag, Snapshot) {}
