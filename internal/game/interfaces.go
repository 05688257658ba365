package game

import "github.com/lox/holdem-engine/internal/card"

// DecisionSource is the single external collaborator that chooses actions.
// Decide is called synchronously from the betting-round driver; it is the
// engine's one suspension point. The returned action's Kind must appear in
// legal; the core rebinds SeatID to seatID before recording regardless of
// what the decision source set, guarding against mislabeling.
type DecisionSource interface {
	Decide(seatID int, snapshot Snapshot, legal []Action) Action
}

// Shuffler is re-exported from card so callers only need to import game to
// wire a randomness source into a Controller.
type Shuffler = card.Shuffler
