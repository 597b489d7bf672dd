// Package midisynth plays scheduled events on an external MIDI device.
// Guitar goes out on channel 1, bass on channel 2 and percussion on the GM
// drum channel 10.
package midisynth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"strummer/audio"
	"strummer/pattern"
)

const (
	guitarChannel uint8 = 0
	bassChannel   uint8 = 1
	drumChannel   uint8 = 9
)

// GM percussion notes for the four drum voices.
var drumNotes = map[pattern.Voice]uint8{
	pattern.VoiceKick:      36,
	pattern.VoiceSnare:     38,
	pattern.VoiceHatClosed: 42,
	pattern.VoiceHatOpen:   46,
}

// Synth is a MIDI output backend.
type Synth struct {
	portName string

	once     sync.Once
	startErr error

	mu   sync.Mutex
	send func(gomidi.Message) error
}

// New creates a MIDI backend for the named output port. An empty name picks
// the first available port at Start time.
func New(portName string) *Synth {
	return &Synth{portName: portName}
}

// OutPorts lists the available MIDI output port names.
func OutPorts() []string {
	var names []string
	for _, port := range gomidi.GetOutPorts() {
		names = append(names, port.String())
	}
	return names
}

// Start opens the output port. Safe to call repeatedly; the port is opened
// once and the first error sticks.
func (s *Synth) Start() error {
	s.once.Do(func() {
		ports := gomidi.GetOutPorts()
		if len(ports) == 0 {
			s.startErr = errors.New("no MIDI output ports available")
			return
		}

		port := ports[0]
		if s.portName != "" {
			found := false
			for _, p := range ports {
				if p.String() == s.portName {
					port = p
					found = true
					break
				}
			}
			if !found {
				s.startErr = fmt.Errorf("MIDI output port %q not found", s.portName)
				return
			}
		}

		send, err := gomidi.SendTo(port)
		if err != nil {
			s.startErr = fmt.Errorf("cannot open MIDI port %q: %w", port.String(), err)
			return
		}
		s.mu.Lock()
		s.send = send
		s.mu.Unlock()
	})
	return s.startErr
}

// PlayNote schedules a NoteOn at offset and the matching NoteOff duration
// later.
func (s *Synth) PlayNote(track audio.Track, pitch uint8, offset time.Duration, velocity float64, duration time.Duration) error {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send == nil {
		return errors.New("midisynth: not started")
	}

	ch := guitarChannel
	if track == audio.TrackBass {
		ch = bassChannel
	}
	vel := midiVelocity(velocity)

	time.AfterFunc(offset, func() {
		send(gomidi.NoteOn(ch, pitch, vel))
		time.AfterFunc(duration, func() {
			send(gomidi.NoteOff(ch, pitch))
		})
	})
	return nil
}

// PlayDrum schedules a percussion hit. Drum notes are short triggers: note
// on, then off 100ms later.
func (s *Synth) PlayDrum(voice pattern.Voice, offset time.Duration, velocity float64) error {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send == nil {
		return errors.New("midisynth: not started")
	}

	note, ok := drumNotes[voice]
	if !ok {
		return fmt.Errorf("midisynth: unknown drum voice %d", voice)
	}
	vel := midiVelocity(velocity)

	time.AfterFunc(offset, func() {
		send(gomidi.NoteOn(drumChannel, note, vel))
		time.AfterFunc(100*time.Millisecond, func() {
			send(gomidi.NoteOff(drumChannel, note))
		})
	})
	return nil
}

// Close releases the MIDI driver.
func (s *Synth) Close() error {
	s.mu.Lock()
	s.send = nil
	s.mu.Unlock()
	gomidi.CloseDriver()
	return nil
}

// midiVelocity maps a 0-1 velocity to MIDI 1-127.
func midiVelocity(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	vel := uint8(v * 127)
	if vel == 0 {
		vel = 1
	}
	return vel
}
