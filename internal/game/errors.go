package game

import (
	"errors"
	"fmt"
)

// Sentinel kinds every concrete error type wraps via Unwrap, so callers can
// test by kind with errors.Is without depending on the concrete type, while
// still being able to reach the concrete fields with errors.As.
var (
	ErrInvalidConstruction = errors.New("invalid construction")
	ErrInvalidInput        = errors.New("invalid input")
	ErrStateInvariant      = errors.New("state invariant violated")
	ErrIllegalAction       = errors.New("illegal action")
)

// InvalidConstructionError is returned when a Controller or GameState is
// built with a nil collaborator, too few seats, or a malformed blind/stack.
type InvalidConstructionError struct {
	Reason string
}

func (e *InvalidConstructionError) Error() string {
	return fmt.Sprintf("game: invalid construction: %s", e.Reason)
}

func (e *InvalidConstructionError) Unwrap() error { return ErrInvalidConstruction }

// NewInvalidConstructionError wraps Reason in an *InvalidConstructionError.
func NewInvalidConstructionError(reason string) error {
	return &InvalidConstructionError{Reason: reason}
}

// InvalidInputError is returned when a showdown hand fails evaluation — too
// few or too many cards, or a duplicate between a seat's hole cards and the
// community. Cause holds the evaluator's underlying error, if any.
type InvalidInputError struct {
	Reason string
	Cause  error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("game: invalid input: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("game: invalid input: %s", e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NewInvalidInputError wraps reason and the evaluator's cause in an
// *InvalidInputError.
func NewInvalidInputError(reason string, cause error) error {
	return &InvalidInputError{Reason: reason, Cause: cause}
}

// IllegalActionError describes a DecisionSource returning an action
// outside the legal set computed for the seat to act. The driver's policy
// is to coerce to Fold and continue; this error records what happened for
// callers who want to observe it via the logger.
type IllegalActionError struct {
	SeatID int
	Got    Action
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("game: seat %d returned illegal action %s", e.SeatID, e.Got.Kind)
}

func (e *IllegalActionError) Unwrap() error { return ErrIllegalAction }

// StateInvariantError indicates a bug: an operation the engine treats as
// structurally impossible was attempted (a third hole card, a negative
// commit amount). It is unrecoverable and is only ever raised via panic, mirroring
// the teacher's treatment of dealing a card beyond a player's two-hole-card
// capacity as a logic violation rather than a reportable error.
type StateInvariantError struct {
	Reason string
}

func (e *StateInvariantError) Error() string {
	return fmt.Sprintf("game: state invariant violated: %s", e.Reason)
}

func (e *StateInvariantError) Unwrap() error { return ErrStateInvariant }

func panicInvariant(reason string) {
	panic(&StateInvariantError{Reason: reason})
}
