package player

import (
	"time"

	"strummer/music"
	"strummer/pattern"
)

// NoteEvent is one pitched event to hand to the sound backend.
type NoteEvent struct {
	Pitch    uint8
	Offset   time.Duration
	Velocity float64
	Duration time.Duration
}

const (
	baseVelocity    = 0.9
	accentMuted     = 0.85 // velocity multiplier off the accented steps
	downstrokeDecay = 0.05 // per-string velocity falloff within a strum
	upstrokeDecay   = 0.04
	minVelocity     = 0.1
	maxVelocity     = 1.0

	strumNoteSustain = 450 * time.Millisecond
	rootHitSustain   = 1200 * time.Millisecond
	rootHitVelocity  = 0.95
)

// RenderStrum turns a voicing into the timed note events of one strum.
// Strings are traversed low to high for a downstroke and high to low for an
// upstroke, mirroring the pick's motion; muted strings emit nothing. Each
// successive string lands strumInterval later, on top of the step's swing
// offset, and velocity decays across the strum.
func RenderStrum(v music.Voicing, accents [pattern.StepsPerBar]bool, downstroke bool, globalStep int, strumInterval, swingOffset time.Duration) []NoteEvent {
	accentMul := accentMuted
	if accents[((globalStep%pattern.StepsPerBar)+pattern.StepsPerBar)%pattern.StepsPerBar] {
		accentMul = 1.0
	}
	decay := upstrokeDecay
	if downstroke {
		decay = downstrokeDecay
	}

	var events []NoteEvent
	i := 0
	forEachString(downstroke, func(stringIdx int) {
		fret := v.Frets[stringIdx]
		if fret == music.Muted {
			return
		}
		vel := baseVelocity * accentMul * (1 - float64(i)*decay)
		events = append(events, NoteEvent{
			Pitch:    music.Tuning[stringIdx] + uint8(fret),
			Offset:   swingOffset + time.Duration(i)*strumInterval,
			Velocity: clampVelocity(vel),
			Duration: strumNoteSustain,
		})
		i++
	})
	return events
}

// RootHit is the reinforcing downbeat event played at step 0 of every bar:
// the voicing's root pitch at full offset-zero attack with a longer sustain
// than the strummed notes.
func RootHit(v music.Voicing) NoteEvent {
	return NoteEvent{
		Pitch:    v.RootPitch(),
		Offset:   0,
		Velocity: rootHitVelocity,
		Duration: rootHitSustain,
	}
}

func forEachString(lowToHigh bool, fn func(stringIdx int)) {
	if lowToHigh {
		for s := 0; s < 6; s++ {
			fn(s)
		}
		return
	}
	for s := 5; s >= 0; s-- {
		fn(s)
	}
}

func clampVelocity(v float64) float64 {
	if v < minVelocity {
		return minVelocity
	}
	if v > maxVelocity {
		return maxVelocity
	}
	return v
}
