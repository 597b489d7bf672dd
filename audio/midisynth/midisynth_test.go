package midisynth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"strummer/audio"
	"strummer/pattern"
)

func TestMidiVelocity(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(127), midiVelocity(1))
	assert.Equal(uint8(63), midiVelocity(0.5))

	// Out-of-range inputs clamp; a sounding note never maps to velocity 0.
	assert.Equal(uint8(127), midiVelocity(2))
	assert.Equal(uint8(1), midiVelocity(0))
	assert.Equal(uint8(1), midiVelocity(-1))
}

func TestDrumNotesCoverAllVoices(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []pattern.Voice{
		pattern.VoiceKick, pattern.VoiceSnare,
		pattern.VoiceHatClosed, pattern.VoiceHatOpen,
	} {
		note, ok := drumNotes[v]
		assert.True(ok, "voice %d has no GM note", v)
		assert.NotZero(note)
	}
}

func TestPlayBeforeStartFails(t *testing.T) {
	assert := assert.New(t)

	s := New("")
	assert.Error(s.PlayNote(audio.TrackGuitar, 60, 0, 0.9, time.Second))
	assert.Error(s.PlayDrum(pattern.VoiceKick, 0, 0.9))
}
