// Package audio defines the sound-production boundary. The playback core
// describes events ("this pitch, this far in the future, this loud, this
// long") and a Backend turns them into sound. Scheduling calls are one-way:
// the core never waits on them.
package audio

import (
	"time"

	"strummer/pattern"
)

// Track identifies which pitched voice an event belongs to.
type Track uint8

const (
	TrackGuitar Track = iota
	TrackBass
)

// Backend produces sound for scheduled events.
//
// Start performs any lazy first-time setup and must be safe to call
// repeatedly; only the first call does work. PlayNote and PlayDrum schedule
// an event at a future offset and return immediately; an error means that
// one event was dropped, never that the backend died.
type Backend interface {
	Start() error
	PlayNote(track Track, pitch uint8, offset time.Duration, velocity float64, duration time.Duration) error
	PlayDrum(voice pattern.Voice, offset time.Duration, velocity float64) error
	Close() error
}
