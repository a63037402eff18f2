package core

import "time"

// WinNotice is a deferred win notification keyed to a session instance.
// The platform delivers it back to the game after Delay; the game drops
// it if the session has been reset in the meantime.
type WinNotice struct {
	SessionID  string
	Generation uint64
	Steps      int
	Delay      time.Duration
}
