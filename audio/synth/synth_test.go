package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPitchFreq(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(440.0, pitchFreq(69), 1e-9)  // A4
	assert.InDelta(261.63, pitchFreq(60), 0.01) // C4
	assert.InDelta(82.41, pitchFreq(40), 0.01)  // low E string
	assert.InDelta(880.0, pitchFreq(81), 1e-6)  // octave doubles
}

func TestVoiceEnvelopeDecays(t *testing.T) {
	assert := assert.New(t)

	v := &voice{freq: 440, amp: 0.5, decay: 3, length: frames(time.Second)}

	var early, late float32
	for i := int64(0); i < v.length; i++ {
		s := v.sample()
		if s < 0 {
			s = -s
		}
		if i < sampleRate/10 {
			if s > early {
				early = s
			}
		} else if i >= v.length-sampleRate/10 {
			if s > late {
				late = s
			}
		}
	}
	assert.True(v.done())
	assert.Greater(early, late, "envelope should decay over the note")
	assert.Zero(v.sample(), "finished voice is silent")
}

func TestVoiceDelayCountsDown(t *testing.T) {
	assert := assert.New(t)

	v := &voice{freq: 440, amp: 0.5, decay: 3, length: 100, delay: 3}
	assert.False(v.done())

	// The delayed frames are silent and do not consume the envelope.
	for i := 0; i < 3; i++ {
		assert.Zero(v.sample())
	}
	assert.Zero(v.pos)
	v.sample()
	assert.Equal(int64(1), v.pos)
}

func TestNoiseVoiceProducesBoundedSamples(t *testing.T) {
	assert := assert.New(t)

	v := &voice{noise: true, amp: 1, decay: 0, length: 1000}
	nonZero := 0
	for i := 0; i < 1000; i++ {
		s := v.sample()
		assert.GreaterOrEqual(s, float32(-1))
		assert.LessOrEqual(s, float32(1))
		if s != 0 {
			nonZero++
		}
	}
	assert.Greater(nonZero, 900, "noise should rarely be exactly zero")
}

func TestMixerReadDropsFinishedVoices(t *testing.T) {
	assert := assert.New(t)

	m := newMixer()
	m.add(&voice{freq: 440, amp: 0.5, decay: 1, length: 8})
	m.add(&voice{freq: 220, amp: 0.5, decay: 1, length: 10000})

	buf := make([]byte, 64*8) // 64 stereo float32 frames
	n, err := m.Read(buf)
	assert.NoError(err)
	assert.Equal(len(buf), n)

	m.mu.Lock()
	remaining := len(m.voices)
	m.mu.Unlock()
	assert.Equal(1, remaining)
}

func TestMixerReadSilenceWhenEmpty(t *testing.T) {
	assert := assert.New(t)

	m := newMixer()
	buf := make([]byte, 16*8)
	for i := range buf {
		buf[i] = 0xff
	}
	n, err := m.Read(buf)
	assert.NoError(err)
	assert.Equal(len(buf), n)
	for _, b := range buf {
		assert.Zero(b)
	}
}

func TestFrames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(sampleRate), frames(time.Second))
	assert.Equal(int64(sampleRate/2), frames(500*time.Millisecond))
	assert.Zero(frames(0))
}

func TestPlayBeforeStartFails(t *testing.T) {
	assert := assert.New(t)

	s := New()
	assert.Error(s.PlayNote(0, 60, 0, 0.9, time.Second))
	assert.Error(s.PlayDrum(0, 0, 0.9))
	assert.NoError(s.Close())
}
