package player

import (
	"time"
)

// Parameter setters. Each takes effect on the next bar start; when playback
// is running the current bar is restarted so the change is heard right
// away. The restart is explicit here rather than a reactive side effect, to
// keep the state machine's transitions visible.

// SetTempo sets the tempo in BPM, clamped to the supported range.
func (c *Controller) SetTempo(bpm float64) {
	if bpm < MinTempo {
		bpm = MinTempo
	}
	if bpm > MaxTempo {
		bpm = MaxTempo
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bpm == bpm {
		return
	}
	c.bpm = bpm
	c.restartBarLocked()
	c.notify()
}

// Tempo returns the current tempo in BPM.
func (c *Controller) Tempo() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bpm
}

// SetSwing sets the swing fraction (0 = straight, 1 = a full half-step
// push on the off-beats).
func (c *Controller) SetSwing(swing float64) {
	if swing < 0 {
		swing = 0
	}
	if swing > 1 {
		swing = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swing = swing
	c.restartBarLocked()
	c.notify()
}

// Swing returns the current swing fraction.
func (c *Controller) Swing() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.swing
}

// SetStrumInterval sets the delay between successive strings of a strum.
func (c *Controller) SetStrumInterval(d time.Duration) {
	if d < MinStrumInterval {
		d = MinStrumInterval
	}
	if d > MaxStrumInterval {
		d = MaxStrumInterval
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strumInterval = d
	c.restartBarLocked()
	c.notify()
}

// StrumInterval returns the delay between successive strings of a strum.
func (c *Controller) StrumInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strumInterval
}

// SetRhythm selects the strum pattern by id.
func (c *Controller) SetRhythm(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rhythmID = id
	c.restartBarLocked()
	c.notify()
}

// Rhythm returns the current strum pattern id.
func (c *Controller) Rhythm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rhythmID
}

// SetDrumPattern selects the drum pattern by id.
func (c *Controller) SetDrumPattern(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drumID = id
	c.restartBarLocked()
	c.notify()
}

// DrumPattern returns the current drum pattern id.
func (c *Controller) DrumPattern() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drumID
}

// SetBassPattern selects the bass pattern by id.
func (c *Controller) SetBassPattern(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bassID = id
	c.restartBarLocked()
	c.notify()
}

// BassPattern returns the current bass pattern id.
func (c *Controller) BassPattern() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bassID
}

// SetDrumsEnabled toggles the drum track. When disabled the drum engine is
// not invoked at all.
func (c *Controller) SetDrumsEnabled(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drumsOn = on
	c.restartBarLocked()
	c.notify()
}

// DrumsEnabled reports whether the drum track is on.
func (c *Controller) DrumsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drumsOn
}

// SetBassEnabled toggles the bass track.
func (c *Controller) SetBassEnabled(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bassOn = on
	c.restartBarLocked()
	c.notify()
}

// BassEnabled reports whether the bass track is on.
func (c *Controller) BassEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bassOn
}

// SetVolumes sets the per-track gains (0-1).
func (c *Controller) SetVolumes(guitar, bass, drums float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guitarVolume = clamp01(guitar)
	c.bassVolume = clamp01(bass)
	c.drumVolume = clamp01(drums)
	c.restartBarLocked()
	c.notify()
}

// Volumes returns the per-track gains.
func (c *Controller) Volumes() (guitar, bass, drums float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.guitarVolume, c.bassVolume, c.drumVolume
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Sequence mutation. Edits are read when a bar is next reached; a bar
// already in progress is never retouched.

// AppendBar adds a bar at the end of the sequence.
func (c *Controller) AppendBar(chordKey string, variant int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq.Append(chordKey, variant)
	c.notify()
}

// RemoveBar deletes a bar; the last remaining bar stays put.
func (c *Controller) RemoveBar(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	ok := c.seq.Remove(i)
	if ok && c.barIndex >= c.seq.Len() {
		c.barIndex = c.seq.Len() - 1
	}
	if ok {
		c.notify()
	}
	return ok
}

// SetBarChord changes the chord of one bar.
func (c *Controller) SetBarChord(i int, chordKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq.SetChord(i, chordKey)
	c.notify()
}

// SetBarVariant changes the voicing variant of one bar.
func (c *Controller) SetBarVariant(i, variant int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq.SetVariant(i, variant)
	c.notify()
}

// LoadProgression replaces the sequence with a progression expanded over a
// tonic. Running sequence playback restarts at bar 0.
func (c *Controller) LoadProgression(tonicPitchClass int, progressionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = FromProgression(tonicPitchClass, progressionID)
	c.barIndex = 0
	if c.mode == ModeSequence {
		c.restartBarLocked()
	}
	c.notify()
}

// SequenceEntries returns a copy of the sequence for display.
func (c *Controller) SequenceEntries() []BarEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.Entries()
}
