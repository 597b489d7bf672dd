package music

// Muted marks a string that is not played in a voicing.
const Muted = -1

// Barre is a single finger covering several strings at one fret.
type Barre struct {
	Finger int
	Fret   int
	From   int // lowest covered string (0 = low E)
	To     int // highest covered string (inclusive)
}

// Voicing is one fingering of a chord across the six strings.
// Frets[0] is the low E string; each entry is Muted or an absolute fret
// number, 0 meaning open. Voicings are immutable once defined.
type Voicing struct {
	Frets   [6]int
	Fingers [6]int // 0 = no finger (open/muted)
	Barre   *Barre
	Root    int // pitch class of the chord's nominal root
}

// Pitches returns the sounding MIDI pitches, low string first.
// Muted strings produce no entry.
func (v Voicing) Pitches() []uint8 {
	var out []uint8
	for i, fret := range v.Frets {
		if fret == Muted {
			continue
		}
		out = append(out, Tuning[i]+uint8(fret))
	}
	return out
}

// RootPitch picks the pitch the bass and root hit should play: the lowest
// sounding pitch whose pitch class matches the chord root. If no string
// sounds the root, the lowest sounding pitch wins instead.
func (v Voicing) RootPitch() uint8 {
	pitches := v.Pitches()
	if len(pitches) == 0 {
		return Tuning[0]
	}
	best := uint8(0)
	found := false
	for _, p := range pitches {
		if PitchClass(p) != v.Root {
			continue
		}
		if !found || p < best {
			best = p
			found = true
		}
	}
	if found {
		return best
	}
	best = pitches[0]
	for _, p := range pitches[1:] {
		if p < best {
			best = p
		}
	}
	return best
}

// StringCount returns how many strings actually sound.
func (v Voicing) StringCount() int {
	n := 0
	for _, fret := range v.Frets {
		if fret != Muted {
			n++
		}
	}
	return n
}
