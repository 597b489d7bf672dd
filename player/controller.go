package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"strummer/audio"
	"strummer/debug"
	"strummer/music"
	"strummer/pattern"
)

// Mode is the playback state: idle, looping a single chord, or walking a
// sequence of bars. The two playing modes are mutually exclusive.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeSingle
	ModeSequence
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeSequence:
		return "sequence"
	default:
		return "idle"
	}
}

// Tempo and strum-speed bounds for the UI range.
const (
	MinTempo = 40
	MaxTempo = 200

	MinStrumInterval = 5 * time.Millisecond
	MaxStrumInterval = 50 * time.Millisecond
)

// Controller owns all playback state: the current mode, the live
// parameters, the sequence, and the one bar player that may be armed at any
// instant. Starting either playback mode synchronously tears down the
// other's clock first; a bar player that has been replaced is stale and its
// callbacks are ignored.
type Controller struct {
	mu      sync.Mutex
	backend audio.Backend

	mode     Mode
	active   *barPlayer
	step     int
	barIndex int
	loop     bool

	// single-chord mode target
	singleKey     string
	singleVariant int

	seq *Sequence

	// live parameters, applied at the next bar (re)start
	bpm           float64
	swing         float64
	strumInterval time.Duration
	rhythmID      string
	drumID        string
	bassID        string
	drumsOn       bool
	bassOn        bool
	guitarVolume  float64
	bassVolume    float64
	drumVolume    float64

	// UpdateChan gets a nudge whenever playback state changes; the TUI
	// listens on it. Non-blocking sends, capacity 1.
	UpdateChan chan struct{}
}

// NewController creates a controller bound to a sound backend, with the
// default practice settings and a one-bar C major sequence.
func NewController(backend audio.Backend) *Controller {
	return &Controller{
		backend:       backend,
		seq:           NewSequence("C"),
		bpm:           92,
		swing:         0,
		strumInterval: 15 * time.Millisecond,
		rhythmID:      "folk",
		drumID:        "rock",
		bassID:        "root-fifth",
		drumsOn:       true,
		bassOn:        true,
		guitarVolume:  1,
		bassVolume:    0.9,
		drumVolume:    0.8,
		UpdateChan:    make(chan struct{}, 1),
	}
}

// PlaySingle starts (or restarts) single-chord playback. Any running
// playback of either mode is cancelled first. If the backend cannot start,
// no clock is armed and the error is returned.
func (c *Controller) PlaySingle(chordKey string, variant int, loop bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	if err := c.backend.Start(); err != nil {
		return fmt.Errorf("sound backend unavailable: %w", err)
	}

	c.mode = ModeSingle
	c.singleKey = chordKey
	c.singleVariant = variant
	c.loop = loop
	c.startBarLocked()
	c.notify()
	return nil
}

// PlaySequence starts sequence playback from bar 0. Any running playback of
// either mode is cancelled first.
func (c *Controller) PlaySequence(loop bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq.Len() == 0 {
		return errors.New("sequence is empty")
	}

	c.stopLocked()
	if err := c.backend.Start(); err != nil {
		return fmt.Errorf("sound backend unavailable: %w", err)
	}

	c.mode = ModeSequence
	c.barIndex = 0
	c.loop = loop
	c.startBarLocked()
	c.notify()
	return nil
}

// Stop cancels the active bar player's clock immediately and goes idle.
// Idempotent: stopping an idle controller is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeIdle && c.active == nil {
		return
	}
	c.stopLocked()
	c.mode = ModeIdle
	c.notify()
}

// PlayReference plays a two-second reference tone for tuning by ear
// (pitch class 9 = A, giving A4).
func (c *Controller) PlayReference(pitchClass int) error {
	if err := c.backend.Start(); err != nil {
		return fmt.Errorf("sound backend unavailable: %w", err)
	}
	pc := ((pitchClass % 12) + 12) % 12
	pitch := uint8(60 + pc)
	return c.backend.PlayNote(audio.TrackGuitar, pitch, 0, 0.8, 2*time.Second)
}

// stopLocked invalidates the active bar player. Its clock handle is cleared
// before any replacement is created, so a stale tick can never act.
func (c *Controller) stopLocked() {
	if c.active != nil {
		c.active.stop()
		c.active = nil
	}
	c.step = 0
}

// startBarLocked arms a fresh bar player for the current target chord.
func (c *Controller) startBarLocked() {
	var entry BarEntry
	switch c.mode {
	case ModeSingle:
		entry = BarEntry{ChordKey: c.singleKey, Variant: c.singleVariant}
	case ModeSequence:
		entry = c.seq.Entry(c.barIndex)
	default:
		return
	}

	cfg := barConfig{
		Voicing:       music.LookupVoicing(entry.ChordKey, entry.Variant),
		Rhythm:        pattern.GetRhythm(c.rhythmID),
		DrumPattern:   c.drumID,
		BassPattern:   c.bassID,
		BPM:           c.bpm,
		Swing:         c.swing,
		StrumInterval: c.strumInterval,
		DrumsEnabled:  c.drumsOn,
		BassEnabled:   c.bassOn,
		GuitarVolume:  c.guitarVolume,
		BassVolume:    c.bassVolume,
		DrumVolume:    c.drumVolume,
	}

	b := newBarPlayer(cfg, c.backend, c.onStep, c.onBarComplete)
	c.active = b
	b.start()
	debug.Log("playback", "bar start: mode=%s chord=%s bar=%d bpm=%.0f", c.mode, entry.ChordKey, c.barIndex, c.bpm)
}

// onStep records the live step index for UI highlight.
func (c *Controller) onStep(step int) {
	c.mu.Lock()
	c.step = step
	c.mu.Unlock()
	debug.LogEvery(64, "step", "tick step=%d", step)
	c.notify()
}

// onBarComplete decides what happens after a bar: restart (single loop),
// advance and wrap (sequence), or fall back to idle. Completions from a
// replaced bar player are stale and ignored.
func (c *Controller) onBarComplete(b *barPlayer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b != c.active {
		return
	}
	c.active = nil
	c.step = 0

	switch c.mode {
	case ModeSingle:
		if c.loop {
			c.startBarLocked()
		} else {
			c.mode = ModeIdle
		}
	case ModeSequence:
		c.barIndex++
		if c.barIndex >= c.seq.Len() {
			if c.loop {
				c.barIndex = 0
			} else {
				c.mode = ModeIdle
				c.barIndex = 0
			}
		}
		if c.mode == ModeSequence {
			c.startBarLocked()
		}
	default:
		c.mode = ModeIdle
	}
	c.notify()
}

// restartBarLocked applies changed parameters by re-entering the current
// bar from step 0. The design accepts the audible restart; resampling a
// running bar would leave the three tracks out of lockstep.
func (c *Controller) restartBarLocked() {
	if c.mode == ModeIdle {
		return
	}
	c.stopLocked()
	c.startBarLocked()
}

// State returns the pieces the UI renders.
func (c *Controller) State() (mode Mode, step, barIndex int, bpm float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode, c.step, c.barIndex, c.bpm
}

// Mode returns the current playback mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// BarIndex returns the current bar within the sequence.
func (c *Controller) BarIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.barIndex
}

func (c *Controller) notify() {
	select {
	case c.UpdateChan <- struct{}{}:
	default:
	}
}
