package ui

import "time"

// autoMoveTickMsg drives the automatic foundation moves: one safe card may
// go up per tick.
type autoMoveTickMsg time.Time

// statusExpiredMsg clears the transient status message. The id guards
// against a stale timer clearing a newer message.
type statusExpiredMsg struct {
	id int
}

// confirmExpiredMsg cancels a pending new-game confirmation that was not
// followed up in time.
type confirmExpiredMsg struct {
	id int
}
