package entity

import "errors"

var (
	// ErrNoDraft is returned when the booking wizard is entered without a
	// stored tier selection. The wizard must exit, never invent a default.
	ErrNoDraft = errors.New("no stall selected")

	ErrNotSignedIn = errors.New("please sign in")
	ErrSoldOut     = errors.New("no stalls left in this tier")
	ErrNotFound    = errors.New("not found")
)
