package player

import (
	"strummer/music"
)

// BarEntry is one bar of a sequence: a chord key, which voicing variant to
// use, and the progression degree that produced it (-1 when the bar was
// appended by hand; degrees let the UI offer harmonic alternatives).
type BarEntry struct {
	ChordKey string
	Variant  int
	Degree   int
}

// Sequence is an ordered list of bar entries. It is plain data; the
// playback controller guards concurrent access.
type Sequence struct {
	entries []BarEntry
}

// NewSequence creates a sequence from explicit chord keys.
func NewSequence(chordKeys ...string) *Sequence {
	s := &Sequence{}
	for _, key := range chordKeys {
		s.entries = append(s.entries, BarEntry{ChordKey: key, Degree: -1})
	}
	return s
}

// FromProgression expands a progression template over a tonic into a
// sequence, one bar per chord.
func FromProgression(tonicPitchClass int, progressionID string) *Sequence {
	symbols := music.Expand(tonicPitchClass, progressionID)
	s := &Sequence{entries: make([]BarEntry, 0, len(symbols))}
	for degree, symbol := range symbols {
		s.entries = append(s.entries, BarEntry{
			ChordKey: music.SymbolToChordKey(symbol),
			Degree:   degree,
		})
	}
	return s
}

// Len returns the number of bars.
func (s *Sequence) Len() int {
	return len(s.entries)
}

// Entry returns the bar at index i, clamped into range so a stale index
// from a concurrent removal cannot fault mid-playback.
func (s *Sequence) Entry(i int) BarEntry {
	if len(s.entries) == 0 {
		return BarEntry{ChordKey: "C", Degree: -1}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.entries) {
		i = len(s.entries) - 1
	}
	return s.entries[i]
}

// Append adds a manually chosen bar at the end.
func (s *Sequence) Append(chordKey string, variant int) {
	s.entries = append(s.entries, BarEntry{ChordKey: chordKey, Variant: variant, Degree: -1})
}

// Remove deletes the bar at index i. The last remaining bar cannot be
// removed: the sequence invariant is length >= 1.
func (s *Sequence) Remove(i int) bool {
	if len(s.entries) <= 1 || i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// SetChord changes the chord of one bar; other bars are untouched. The bar
// loses its progression degree since it no longer comes from the template.
func (s *Sequence) SetChord(i int, chordKey string) {
	if i < 0 || i >= len(s.entries) {
		return
	}
	s.entries[i].ChordKey = chordKey
	s.entries[i].Variant = 0
	s.entries[i].Degree = -1
}

// SetVariant changes which voicing variant one bar uses.
func (s *Sequence) SetVariant(i, variant int) {
	if i < 0 || i >= len(s.entries) {
		return
	}
	s.entries[i].Variant = variant
}

// Entries returns a copy for display.
func (s *Sequence) Entries() []BarEntry {
	out := make([]BarEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
