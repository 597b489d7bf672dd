package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"strummer/music"
	"strummer/pattern"
)

func strumPitches(events []NoteEvent) []uint8 {
	out := make([]uint8, len(events))
	for i, ev := range events {
		out[i] = ev.Pitch
	}
	return out
}

func TestRenderStrumDownstroke(t *testing.T) {
	assert := assert.New(t)

	v := music.LookupVoicing("C", 0) // x32010, 5 sounding strings
	accents := pattern.GetRhythm("folk").AccentSet()
	interval := 15 * time.Millisecond

	events := RenderStrum(v, accents, true, 0, interval, 0)

	assert.Len(events, 5)
	assert.Equal([]uint8{48, 52, 55, 60, 64}, strumPitches(events))

	// Each string lands one strum interval after the previous.
	for i, ev := range events {
		assert.Equal(time.Duration(i)*interval, ev.Offset, "string %d", i)
		assert.Equal(strumNoteSustain, ev.Duration, "string %d", i)
	}

	// Step 0 is accented: first string at full base velocity, then a 5%
	// falloff per string.
	assert.InDelta(0.9, events[0].Velocity, 1e-9)
	assert.InDelta(0.855, events[1].Velocity, 1e-9)
	assert.InDelta(0.72, events[4].Velocity, 1e-9)
}

func TestRenderStrumUpstrokeReversesTraversal(t *testing.T) {
	assert := assert.New(t)

	v := music.LookupVoicing("C", 0)
	accents := pattern.GetRhythm("folk").AccentSet()
	interval := 10 * time.Millisecond

	down := RenderStrum(v, accents, true, 0, interval, 0)
	up := RenderStrum(v, accents, false, 0, interval, 0)

	assert.Len(up, len(down))
	for i := range up {
		assert.Equal(down[len(down)-1-i].Pitch, up[i].Pitch, "event %d", i)
	}

	// The up decay is gentler, so the last string of an upstroke rings
	// louder than the last string of a downstroke.
	assert.Greater(up[len(up)-1].Velocity, down[len(down)-1].Velocity)
}

func TestRenderStrumAccent(t *testing.T) {
	assert := assert.New(t)

	v := music.LookupVoicing("C", 0)
	accents := pattern.GetRhythm("folk").AccentSet() // accents on 0, 2, 6

	accented := RenderStrum(v, accents, true, 2, 0, 0)
	muted := RenderStrum(v, accents, true, 3, 0, 0)

	assert.InDelta(0.9, accented[0].Velocity, 1e-9)
	assert.InDelta(0.9*0.85, muted[0].Velocity, 1e-9)

	// The global step wraps mod 8, so step 10 is accented like step 2.
	wrapped := RenderStrum(v, accents, true, 10, 0, 0)
	assert.Equal(accented[0].Velocity, wrapped[0].Velocity)
}

func TestRenderStrumSwingShiftsWholeStrum(t *testing.T) {
	assert := assert.New(t)

	v := music.LookupVoicing("G", 0)
	accents := pattern.GetRhythm("folk").AccentSet()
	interval := 15 * time.Millisecond
	swing := 40 * time.Millisecond

	straight := RenderStrum(v, accents, true, 1, interval, 0)
	swung := RenderStrum(v, accents, true, 1, interval, swing)

	assert.Len(swung, len(straight))
	for i := range swung {
		assert.Equal(straight[i].Offset+swing, swung[i].Offset, "event %d", i)
	}
}

func TestRenderStrumSkipsMutedStrings(t *testing.T) {
	assert := assert.New(t)

	v := music.LookupVoicing("D", 0) // xx0232, 4 sounding strings
	accents := pattern.GetRhythm("folk").AccentSet()

	events := RenderStrum(v, accents, true, 0, 0, 0)
	assert.Len(events, v.StringCount())
	assert.Equal([]uint8{50, 57, 62, 66}, strumPitches(events))
}

func TestRenderStrumVelocityBounds(t *testing.T) {
	assert := assert.New(t)

	accents := pattern.GetRhythm("eighths").AccentSet()
	for _, key := range music.ChordKeys() {
		v := music.LookupVoicing(key, 0)
		for step := 0; step < pattern.StepsPerBar; step++ {
			for _, down := range []bool{true, false} {
				for _, ev := range RenderStrum(v, accents, down, step, 0, 0) {
					assert.GreaterOrEqual(ev.Velocity, minVelocity, "%s step %d", key, step)
					assert.LessOrEqual(ev.Velocity, maxVelocity, "%s step %d", key, step)
				}
			}
		}
	}
}

func TestClampVelocity(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(minVelocity, clampVelocity(-2))
	assert.Equal(minVelocity, clampVelocity(0.05))
	assert.Equal(0.5, clampVelocity(0.5))
	assert.Equal(maxVelocity, clampVelocity(1.7))
}

func TestRootHit(t *testing.T) {
	assert := assert.New(t)

	hit := RootHit(music.LookupVoicing("C", 0))
	assert.Equal(uint8(48), hit.Pitch)
	assert.Zero(hit.Offset)
	assert.Equal(rootHitVelocity, hit.Velocity)
	assert.Equal(rootHitSustain, hit.Duration)

	// The root hit outlasts and out-punches the strummed notes.
	assert.Greater(hit.Duration, strumNoteSustain)
	assert.Greater(hit.Velocity, baseVelocity)
}
