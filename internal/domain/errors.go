package domain

import "errors"

// Sentinel errors surfaced by the registry and ledger services. Handlers
// map these to HTTP statuses; everything else is treated as internal.
var (
	// ErrEmployeeNotFound means a name did not resolve against the registry.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNameTaken means a rename would collide with a different employee
	// under case-insensitive comparison.
	ErrNameTaken = errors.New("employee name already taken")

	// ErrTerminalTaken means the (date, terminal, shift) triple is already
	// booked.
	ErrTerminalTaken = errors.New("terminal already assigned for this date and shift")

	// ErrAnchorNotSunday means a first-worked-Sunday date does not fall on
	// a Sunday.
	ErrAnchorNotSunday = errors.New("first worked sunday must fall on a sunday")
)
