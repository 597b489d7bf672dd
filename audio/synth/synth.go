// Package synth is a small software-synth backend built on oto. Pitched
// notes are rendered as a pair of slightly detuned decaying sines (a cheap
// plucked-string), percussion as filtered noise bursts and a low sine thump
// for the kick.
package synth

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"strummer/audio"
	"strummer/pattern"
)

const sampleRate = 44100

// The oto context has process-wide lifetime, so it is created once and
// shared; first-time setup is serialized even if playback starts race.
var (
	contextOnce sync.Once
	context     *oto.Context
	contextErr  error
)

func sharedContext() (*oto.Context, error) {
	contextOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			contextErr = err
			return
		}
		<-ready
		context = ctx
	})
	return context, contextErr
}

// Synth is a software backend that mixes scheduled voices into an oto
// player stream.
type Synth struct {
	once     sync.Once
	startErr error

	mixer  *mixer
	player *oto.Player
}

// New creates a software synth backend.
func New() *Synth {
	return &Synth{mixer: newMixer()}
}

// Start brings up the shared audio context and starts the stream.
func (s *Synth) Start() error {
	s.once.Do(func() {
		ctx, err := sharedContext()
		if err != nil {
			s.startErr = err
			return
		}
		s.player = ctx.NewPlayer(s.mixer)
		s.player.Play()
	})
	return s.startErr
}

// PlayNote schedules a plucked-string voice.
func (s *Synth) PlayNote(track audio.Track, pitch uint8, offset time.Duration, velocity float64, duration time.Duration) error {
	if s.player == nil {
		return errors.New("synth: not started")
	}
	freq := pitchFreq(pitch)
	amp := 0.25 * clamp01(velocity)
	if track == audio.TrackBass {
		amp *= 1.3 // bass sits lower, give it some weight
	}
	s.mixer.add(&voice{
		freq:   freq,
		freq2:  freq * 1.003,
		amp:    amp,
		decay:  3.0,
		length: frames(duration),
		delay:  frames(offset),
	})
	return nil
}

// PlayDrum schedules a percussion voice.
func (s *Synth) PlayDrum(drum pattern.Voice, offset time.Duration, velocity float64) error {
	if s.player == nil {
		return errors.New("synth: not started")
	}
	amp := 0.3 * clamp01(velocity)
	v := &voice{amp: amp, delay: frames(offset)}
	switch drum {
	case pattern.VoiceKick:
		v.freq = 55
		v.decay = 18
		v.length = frames(300 * time.Millisecond)
	case pattern.VoiceSnare:
		v.noise = true
		v.decay = 25
		v.length = frames(200 * time.Millisecond)
	case pattern.VoiceHatClosed:
		v.noise = true
		v.amp *= 0.6
		v.decay = 60
		v.length = frames(80 * time.Millisecond)
	case pattern.VoiceHatOpen:
		v.noise = true
		v.amp *= 0.6
		v.decay = 8
		v.length = frames(400 * time.Millisecond)
	default:
		return errors.New("synth: unknown drum voice")
	}
	s.mixer.add(v)
	return nil
}

// Close stops the stream. The shared context stays up for the process.
func (s *Synth) Close() error {
	if s.player != nil {
		return s.player.Close()
	}
	return nil
}

func pitchFreq(pitch uint8) float64 {
	return 440 * math.Pow(2, (float64(pitch)-69)/12)
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

func frames(d time.Duration) int64 {
	return int64(d.Seconds() * sampleRate)
}

// voice is one sounding event. delay counts down in frames before the voice
// begins; pos then advances through its envelope.
type voice struct {
	freq   float64
	freq2  float64 // detuned partner, 0 = none
	noise  bool
	amp    float64
	decay  float64 // exponential decay rate, 1/s
	length int64
	delay  int64
	pos    int64
	rng    uint32 // per-voice noise state, no shared RNG lock
}

func (v *voice) sample() float32 {
	if v.delay > 0 {
		v.delay--
		return 0
	}
	if v.pos >= v.length {
		return 0
	}
	t := float64(v.pos) / sampleRate
	env := v.amp * math.Exp(-v.decay*t)

	var s float64
	if v.noise {
		s = v.nextNoise()
	} else {
		s = math.Sin(2 * math.Pi * v.freq * t)
		if v.freq2 > 0 {
			s = 0.7*s + 0.3*math.Sin(2*math.Pi*v.freq2*t)
		}
	}
	v.pos++
	return float32(env * s)
}

func (v *voice) done() bool {
	return v.delay <= 0 && v.pos >= v.length
}

func (v *voice) nextNoise() float64 {
	if v.rng == 0 {
		v.rng = 0x9d2c5680
	}
	// xorshift32
	v.rng ^= v.rng << 13
	v.rng ^= v.rng >> 17
	v.rng ^= v.rng << 5
	return float64(int32(v.rng)) / math.MaxInt32 * 0.5
}

// mixer sums active voices into the float32 stereo stream oto reads.
type mixer struct {
	mu     sync.Mutex
	voices []*voice
}

func newMixer() *mixer {
	return &mixer{}
}

func (m *mixer) add(v *voice) {
	m.mu.Lock()
	m.voices = append(m.voices, v)
	m.mu.Unlock()
}

func (m *mixer) Read(p []byte) (int, error) {
	frameCount := len(p) / 8 // 2 channels x 4 bytes
	if frameCount == 0 {
		return 0, nil
	}

	m.mu.Lock()
	for i := 0; i < frameCount; i++ {
		var sum float32
		for _, v := range m.voices {
			sum += v.sample()
		}
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		bits := math.Float32bits(sum)
		binary.LittleEndian.PutUint32(p[i*8:], bits)
		binary.LittleEndian.PutUint32(p[i*8+4:], bits)
	}
	// Drop finished voices.
	alive := m.voices[:0]
	for _, v := range m.voices {
		if !v.done() {
			alive = append(alive, v)
		}
	}
	m.voices = alive
	m.mu.Unlock()

	return frameCount * 8, nil
}
