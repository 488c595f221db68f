package board

import "errors"

var (
	// ErrInvalidPlacement is returned by Place when a vessel leaves the grid or
	// touches a cell that is already taken or reserved around another vessel.
	ErrInvalidPlacement = errors.New("vessel cannot be placed here")
	ErrOutOfBounds      = errors.New("target is outside of the board")
	ErrAlreadyResolved  = errors.New("this cell was already shot at")
	// ErrGenerationFailed means the attempt budget ran out before the whole
	// fleet was placed. The partially filled grid is discarded.
	ErrGenerationFailed = errors.New("could not place the fleet")

	ErrSetupFinished   = errors.New("setup is already finished")
	ErrSetupInProgress = errors.New("setup is not finished yet")
)
