package music

import "fmt"

// Pitches are MIDI note numbers (middle C = 60).

// NoteNames are the 12 pitch class names, sharps only.
var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Tuning is standard guitar tuning, low string to high: E2 A2 D3 G3 B3 E4.
var Tuning = [6]uint8{40, 45, 50, 55, 59, 64}

// PitchClass returns the pitch class (0-11) of a MIDI note number.
func PitchClass(pitch uint8) int {
	return int(pitch) % 12
}

// PitchName renders a MIDI note number as name + octave, e.g. 60 -> "C4".
func PitchName(pitch uint8) string {
	return fmt.Sprintf("%s%d", NoteNames[PitchClass(pitch)], int(pitch)/12-1)
}

// ParsePitchClass returns the pitch class for a note name ("C", "F#", ...).
// Flats are accepted ("Bb" -> 10). Returns -1 if the name is unknown.
func ParsePitchClass(name string) int {
	if name == "" {
		return -1
	}
	base := -1
	switch name[0] {
	case 'C', 'c':
		base = 0
	case 'D', 'd':
		base = 2
	case 'E', 'e':
		base = 4
	case 'F', 'f':
		base = 5
	case 'G', 'g':
		base = 7
	case 'A', 'a':
		base = 9
	case 'B', 'b':
		base = 11
	}
	if base < 0 {
		return -1
	}
	for _, c := range name[1:] {
		switch c {
		case '#':
			base++
		case 'b':
			base--
		default:
			return -1
		}
	}
	return ((base % 12) + 12) % 12
}
