package engine

import "fmt"

// LockedError indicates equipment gated behind a required level.
// Returned by gate checks so callers can tell the player what to aim
// for.
type LockedError struct {
	ItemName      string
	RequiredLevel uint32
	CurrentLevel  uint32
}

func (e LockedError) Error() string {
	return fmt.Sprintf("%s unlocks at level %d (currently %d)", e.ItemName, e.RequiredLevel, e.CurrentLevel)
}
