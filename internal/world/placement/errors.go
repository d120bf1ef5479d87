package placement

import "errors"

// Precondition errors: the caller asked for something invalid. Nothing has been
// mutated when one of these is returned.
var (
	ErrUnknownRoom   = errors.New("room is not in the arena")
	ErrAlreadyPlaced = errors.New("room has already been placed")
	ErrCellOccupied  = errors.New("target cells are occupied")
)

// Fatal errors: the current generation attempt cannot continue and has to be
// discarded.
var (
	// ErrNoCandidates means there was nothing in the heat map to draw from
	ErrNoCandidates = errors.New("heat map has no candidate cells")
	// ErrSearchExhausted means every heat map entry was drawn and none fit
	ErrSearchExhausted = errors.New("heat map exhausted without finding a placement")
)

// IsFatal reports whether err requires discarding the grid and starting over
func IsFatal(err error) bool {
	return errors.Is(err, ErrNoCandidates) || errors.Is(err, ErrSearchExhausted)
}
