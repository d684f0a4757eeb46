package piece

import "errors"

// Sentinel errors for piece construction.
var (
	// ErrUnknownKind indicates a Kind outside the catalogue.
	ErrUnknownKind = errors.New("piece: unknown piece kind")
	// ErrNeedsSide indicates a player piece requested with SideNone.
	ErrNeedsSide = errors.New("piece: this piece belongs to a side")
	// ErrNoSide indicates the cathedral requested with a player side.
	ErrNoSide = errors.New("piece: the cathedral is neutral")
)
