package domain

import "errors"

var (
	// ErrInvalidTransition is returned when a transition is not legal for
	// the session's current status. The session is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition for current state")

	// ErrRevokeOutOfRange is returned when a revoke asks for more entries
	// than exist, exceeds the hard cap, or would cross a non-revokable
	// ledger entry.
	ErrRevokeOutOfRange = errors.New("revoke target out of range")

	// ErrRevokeConflict is returned when a targeted entry's snapshot no
	// longer matches the current row state. Nothing is applied.
	ErrRevokeConflict = errors.New("revoke snapshot conflicts with current state")
)
