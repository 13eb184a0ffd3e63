package game

import "errors"

// Input errors. All of them are recoverable: the caller reports the problem
// and prompts again without any change to the session.
var (
	// ErrNotANumber is returned when an index prompt receives non-numeric text.
	ErrNotANumber = errors.New("not a number")

	// ErrOutOfRange is returned for an index or coordinate outside the board.
	ErrOutOfRange = errors.New("index out of range")

	// ErrAlreadyRevealed is returned when selecting a card that is face-up or
	// matched. Picking the same index twice in one turn lands here too.
	ErrAlreadyRevealed = errors.New("card already revealed")

	// ErrInvalidReplayChoice is returned when a replay answer is not Y or N.
	ErrInvalidReplayChoice = errors.New("invalid replay choice")
)

// ErrConfiguration is returned by Setup when the alphabet cannot tile the board.
var ErrConfiguration = errors.New("invalid game configuration")

// ResolvePair precondition failures. These indicate a caller bug, not bad input.
var (
	ErrSameCard       = errors.New("pair uses the same card twice")
	ErrNotRevealed    = errors.New("card not revealed")
	ErrAlreadyMatched = errors.New("card already matched")
)
