package player

import (
	"sync"
	"time"

	"strummer/audio"
	"strummer/debug"
	"strummer/music"
	"strummer/pattern"
)

// barConfig is everything a bar player needs to drive one bar. It is built
// by the controller from the live settings at bar start, so parameter
// changes take effect on the next (re)start rather than mid-bar.
type barConfig struct {
	Voicing       music.Voicing
	Rhythm        pattern.Rhythm
	DrumPattern   string
	BassPattern   string
	BPM           float64
	Swing         float64
	StrumInterval time.Duration

	DrumsEnabled bool
	BassEnabled  bool

	GuitarVolume float64
	BassVolume   float64
	DrumVolume   float64
}

// barPlayer drives exactly one bar (8 strum steps) of a single voicing to
// completion, firing the strum renderer, drum engine and bass engine in
// lockstep from one periodic clock. It runs once and is then discarded; the
// controller creates a fresh one per bar.
type barPlayer struct {
	cfg     barConfig
	backend audio.Backend
	accents [pattern.StepsPerBar]bool

	stopChan chan struct{}
	stopOnce sync.Once

	onStep     func(step int)
	onComplete func(*barPlayer)
}

func newBarPlayer(cfg barConfig, backend audio.Backend, onStep func(int), onComplete func(*barPlayer)) *barPlayer {
	return &barPlayer{
		cfg:        cfg,
		backend:    backend,
		accents:    cfg.Rhythm.AccentSet(),
		stopChan:   make(chan struct{}),
		onStep:     onStep,
		onComplete: onComplete,
	}
}

// start arms the clock. The bar runs on its own goroutine; cancellation is
// observed between steps and while waiting on the tick.
func (b *barPlayer) start() {
	go b.run()
}

// stop cancels the pending tick synchronously. Safe to call more than once;
// after stop returns, no further step of this bar will fire.
func (b *barPlayer) stop() {
	b.stopOnce.Do(func() {
		close(b.stopChan)
	})
}

func (b *barPlayer) run() {
	ticker := time.NewTicker(StepDuration(b.cfg.BPM))
	defer ticker.Stop()

	for step := 0; step < pattern.StepsPerBar; step++ {
		select {
		case <-b.stopChan:
			return
		default:
		}

		if b.onStep != nil {
			b.onStep(step)
		}
		b.playStep(step)

		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
		}
	}

	if b.onComplete != nil {
		b.onComplete(b)
	}
}

// playStep emits everything that sounds at one strum step, in fixed order:
// root hit, strum notes, drum hits, bass note. Emission failures are logged
// and dropped; a failed note never halts the bar's clock.
func (b *barPlayer) playStep(step int) {
	if step == 0 {
		hit := RootHit(b.cfg.Voicing)
		b.emitNote(audio.TrackGuitar, hit, b.cfg.GuitarVolume)
	}

	stroke := b.cfg.Rhythm.Steps[step]
	if stroke != pattern.Rest {
		swing := SwingOffset(step, b.cfg.BPM, b.cfg.Swing)
		events := RenderStrum(b.cfg.Voicing, b.accents, stroke == pattern.Down, step, b.cfg.StrumInterval, swing)
		for _, ev := range events {
			b.emitNote(audio.TrackGuitar, ev, b.cfg.GuitarVolume)
		}
	}

	if b.cfg.DrumsEnabled {
		// One drum poll per strum step, at the even 16th slot.
		for _, voice := range pattern.DrumHits(b.cfg.DrumPattern, 2*step) {
			if err := b.backend.PlayDrum(voice, 0, baseVelocity*b.cfg.DrumVolume); err != nil {
				debug.Log("playback", "drum emit failed: %v", err)
			}
		}
	}

	if b.cfg.BassEnabled {
		root := b.cfg.Voicing.RootPitch()
		if pitch, ok := pattern.BassNote(root, b.cfg.BassPattern, step); ok {
			ev := NoteEvent{
				Pitch:    pitch,
				Velocity: baseVelocity,
				Duration: StepDuration(b.cfg.BPM),
			}
			b.emitNote(audio.TrackBass, ev, b.cfg.BassVolume)
		}
	}
}

func (b *barPlayer) emitNote(track audio.Track, ev NoteEvent, volume float64) {
	vel := ev.Velocity * volume
	if vel <= 0 {
		return
	}
	if vel > maxVelocity {
		vel = maxVelocity
	}
	if err := b.backend.PlayNote(track, ev.Pitch, ev.Offset, vel, ev.Duration); err != nil {
		debug.Log("playback", "note emit failed: pitch=%d: %v", ev.Pitch, err)
	}
}
