package battle

import "errors"

var (
	// ErrInvalidConfig is returned when a battle cannot be built from the
	// supplied actor configs or options.
	ErrInvalidConfig = errors.New("invalid battle config")
	// ErrReentrant is returned when an observer calls back into the
	// controller while it is notifying.
	ErrReentrant = errors.New("controller re-entered during notification")
	// ErrNoBattle is returned by intents issued before NewBattle.
	ErrNoBattle = errors.New("no battle in progress")
)
