// errors.go declares the module's sentinel errors, reported with plain
// fmt.Errorf/%w wrapping and checked with errors.Is — no stack-trace
// error library is involved.

package bitengine

import "errors"

var (
	// ErrMalformedFEN is returned by ParseFEN when a FEN string has an
	// unknown piece letter, a missing field, or an invalid side-to-move
	// character.  Reported to the caller; there is no recovery.
	ErrMalformedFEN = errors.New("bitengine: malformed FEN")

	// ErrInvariantViolation marks a violation of one of Position's
	// structural invariants (e.g. a PieceAt lookup disagreeing with
	// Occupied).  It should never occur in a correct build; callers that
	// hit it have found a move generator or state-mutation bug.
	ErrInvariantViolation = errors.New("bitengine: position invariant violated")
)
