package music

// chords maps a chord key to its voicing variants, first variant being the
// most common shape. Frets are low E to high E, -1 = muted, 0 = open.
var chords = map[string][]Voicing{
	"C": {
		{Frets: [6]int{-1, 3, 2, 0, 1, 0}, Fingers: [6]int{0, 3, 2, 0, 1, 0}, Root: 0},
		{Frets: [6]int{8, 10, 10, 9, 8, 8}, Fingers: [6]int{1, 3, 4, 2, 1, 1}, Barre: &Barre{Finger: 1, Fret: 8, From: 0, To: 5}, Root: 0},
	},
	"Cm": {
		{Frets: [6]int{-1, 3, 5, 5, 4, 3}, Fingers: [6]int{0, 1, 3, 4, 2, 1}, Barre: &Barre{Finger: 1, Fret: 3, From: 1, To: 5}, Root: 0},
	},
	"C7": {
		{Frets: [6]int{-1, 3, 2, 3, 1, 0}, Fingers: [6]int{0, 3, 2, 4, 1, 0}, Root: 0},
	},
	"Cmaj7": {
		{Frets: [6]int{-1, 3, 2, 0, 0, 0}, Fingers: [6]int{0, 3, 2, 0, 0, 0}, Root: 0},
	},
	"Cm7": {
		{Frets: [6]int{-1, 3, 5, 3, 4, 3}, Fingers: [6]int{0, 1, 3, 1, 2, 1}, Barre: &Barre{Finger: 1, Fret: 3, From: 1, To: 5}, Root: 0},
	},
	"C#": {
		{Frets: [6]int{-1, 4, 6, 6, 6, 4}, Fingers: [6]int{0, 1, 2, 3, 4, 1}, Barre: &Barre{Finger: 1, Fret: 4, From: 1, To: 5}, Root: 1},
	},
	"C#m": {
		{Frets: [6]int{-1, 4, 6, 6, 5, 4}, Fingers: [6]int{0, 1, 3, 4, 2, 1}, Barre: &Barre{Finger: 1, Fret: 4, From: 1, To: 5}, Root: 1},
	},
	"D": {
		{Frets: [6]int{-1, -1, 0, 2, 3, 2}, Fingers: [6]int{0, 0, 0, 1, 3, 2}, Root: 2},
		{Frets: [6]int{-1, 5, 7, 7, 7, 5}, Fingers: [6]int{0, 1, 2, 3, 4, 1}, Barre: &Barre{Finger: 1, Fret: 5, From: 1, To: 5}, Root: 2},
	},
	"Dm": {
		{Frets: [6]int{-1, -1, 0, 2, 3, 1}, Fingers: [6]int{0, 0, 0, 2, 3, 1}, Root: 2},
	},
	"D7": {
		{Frets: [6]int{-1, -1, 0, 2, 1, 2}, Fingers: [6]int{0, 0, 0, 2, 1, 3}, Root: 2},
	},
	"Dmaj7": {
		{Frets: [6]int{-1, -1, 0, 2, 2, 2}, Fingers: [6]int{0, 0, 0, 1, 2, 3}, Root: 2},
	},
	"Dm7": {
		{Frets: [6]int{-1, -1, 0, 2, 1, 1}, Fingers: [6]int{0, 0, 0, 2, 1, 1}, Root: 2},
	},
	"D#": {
		{Frets: [6]int{-1, 6, 8, 8, 8, 6}, Fingers: [6]int{0, 1, 2, 3, 4, 1}, Barre: &Barre{Finger: 1, Fret: 6, From: 1, To: 5}, Root: 3},
	},
	"D#m": {
		{Frets: [6]int{-1, 6, 8, 8, 7, 6}, Fingers: [6]int{0, 1, 3, 4, 2, 1}, Barre: &Barre{Finger: 1, Fret: 6, From: 1, To: 5}, Root: 3},
	},
	"E": {
		{Frets: [6]int{0, 2, 2, 1, 0, 0}, Fingers: [6]int{0, 2, 3, 1, 0, 0}, Root: 4},
	},
	"Em": {
		{Frets: [6]int{0, 2, 2, 0, 0, 0}, Fingers: [6]int{0, 2, 3, 0, 0, 0}, Root: 4},
	},
	"E7": {
		{Frets: [6]int{0, 2, 0, 1, 0, 0}, Fingers: [6]int{0, 2, 0, 1, 0, 0}, Root: 4},
	},
	"Emaj7": {
		{Frets: [6]int{0, 2, 1, 1, 0, 0}, Fingers: [6]int{0, 3, 1, 2, 0, 0}, Root: 4},
	},
	"Em7": {
		{Frets: [6]int{0, 2, 0, 0, 0, 0}, Fingers: [6]int{0, 2, 0, 0, 0, 0}, Root: 4},
	},
	"F": {
		{Frets: [6]int{1, 3, 3, 2, 1, 1}, Fingers: [6]int{1, 3, 4, 2, 1, 1}, Barre: &Barre{Finger: 1, Fret: 1, From: 0, To: 5}, Root: 5},
		{Frets: [6]int{-1, -1, 3, 2, 1, 1}, Fingers: [6]int{0, 0, 3, 2, 1, 1}, Root: 5},
	},
	"Fm": {
		{Frets: [6]int{1, 3, 3, 1, 1, 1}, Fingers: [6]int{1, 3, 4, 1, 1, 1}, Barre: &Barre{Finger: 1, Fret: 1, From: 0, To: 5}, Root: 5},
	},
	"F7": {
		{Frets: [6]int{1, 3, 1, 2, 1, 1}, Fingers: [6]int{1, 3, 1, 2, 1, 1}, Barre: &Barre{Finger: 1, Fret: 1, From: 0, To: 5}, Root: 5},
	},
	"Fmaj7": {
		{Frets: [6]int{-1, -1, 3, 2, 1, 0}, Fingers: [6]int{0, 0, 3, 2, 1, 0}, Root: 5},
	},
	"F#": {
		{Frets: [6]int{2, 4, 4, 3, 2, 2}, Fingers: [6]int{1, 3, 4, 2, 1, 1}, Barre: &Barre{Finger: 1, Fret: 2, From: 0, To: 5}, Root: 6},
	},
	"F#m": {
		{Frets: [6]int{2, 4, 4, 2, 2, 2}, Fingers: [6]int{1, 3, 4, 1, 1, 1}, Barre: &Barre{Finger: 1, Fret: 2, From: 0, To: 5}, Root: 6},
	},
	"G": {
		{Frets: [6]int{3, 2, 0, 0, 0, 3}, Fingers: [6]int{2, 1, 0, 0, 0, 3}, Root: 7},
		{Frets: [6]int{3, 2, 0, 0, 3, 3}, Fingers: [6]int{2, 1, 0, 0, 3, 4}, Root: 7},
	},
	"Gm": {
		{Frets: [6]int{3, 5, 5, 3, 3, 3}, Fingers: [6]int{1, 3, 4, 1, 1, 1}, Barre: &Barre{Finger: 1, Fret: 3, From: 0, To: 5}, Root: 7},
	},
	"G7": {
		{Frets: [6]int{3, 2, 0, 0, 0, 1}, Fingers: [6]int{3, 2, 0, 0, 0, 1}, Root: 7},
	},
	"Gmaj7": {
		{Frets: [6]int{3, 2, 0, 0, 0, 2}, Fingers: [6]int{3, 1, 0, 0, 0, 2}, Root: 7},
	},
	"Gm7": {
		{Frets: [6]int{3, 5, 3, 3, 3, 3}, Fingers: [6]int{1, 3, 1, 1, 1, 1}, Barre: &Barre{Finger: 1, Fret: 3, From: 0, To: 5}, Root: 7},
	},
	"G#": {
		{Frets: [6]int{4, 6, 6, 5, 4, 4}, Fingers: [6]int{1, 3, 4, 2, 1, 1}, Barre: &Barre{Finger: 1, Fret: 4, From: 0, To: 5}, Root: 8},
	},
	"G#m": {
		{Frets: [6]int{4, 6, 6, 4, 4, 4}, Fingers: [6]int{1, 3, 4, 1, 1, 1}, Barre: &Barre{Finger: 1, Fret: 4, From: 0, To: 5}, Root: 8},
	},
	"A": {
		{Frets: [6]int{-1, 0, 2, 2, 2, 0}, Fingers: [6]int{0, 0, 1, 2, 3, 0}, Root: 9},
	},
	"Am": {
		{Frets: [6]int{-1, 0, 2, 2, 1, 0}, Fingers: [6]int{0, 0, 2, 3, 1, 0}, Root: 9},
	},
	"A7": {
		{Frets: [6]int{-1, 0, 2, 0, 2, 0}, Fingers: [6]int{0, 0, 1, 0, 2, 0}, Root: 9},
	},
	"Amaj7": {
		{Frets: [6]int{-1, 0, 2, 1, 2, 0}, Fingers: [6]int{0, 0, 2, 1, 3, 0}, Root: 9},
	},
	"Am7": {
		{Frets: [6]int{-1, 0, 2, 0, 1, 0}, Fingers: [6]int{0, 0, 2, 0, 1, 0}, Root: 9},
	},
	"A#": {
		{Frets: [6]int{-1, 1, 3, 3, 3, 1}, Fingers: [6]int{0, 1, 2, 3, 4, 1}, Barre: &Barre{Finger: 1, Fret: 1, From: 1, To: 5}, Root: 10},
	},
	"A#m": {
		{Frets: [6]int{-1, 1, 3, 3, 2, 1}, Fingers: [6]int{0, 1, 3, 4, 2, 1}, Barre: &Barre{Finger: 1, Fret: 1, From: 1, To: 5}, Root: 10},
	},
	"B": {
		{Frets: [6]int{-1, 2, 4, 4, 4, 2}, Fingers: [6]int{0, 1, 2, 3, 4, 1}, Barre: &Barre{Finger: 1, Fret: 2, From: 1, To: 5}, Root: 11},
	},
	"Bm": {
		{Frets: [6]int{-1, 2, 4, 4, 3, 2}, Fingers: [6]int{0, 1, 3, 4, 2, 1}, Barre: &Barre{Finger: 1, Fret: 2, From: 1, To: 5}, Root: 11},
	},
	"B7": {
		{Frets: [6]int{-1, 2, 1, 2, 0, 2}, Fingers: [6]int{0, 2, 1, 3, 0, 4}, Root: 11},
	},
	"Bm7": {
		{Frets: [6]int{-1, 2, 4, 2, 3, 2}, Fingers: [6]int{0, 1, 3, 1, 2, 1}, Barre: &Barre{Finger: 1, Fret: 2, From: 1, To: 5}, Root: 11},
	},
}

// chordOrder is the display order for ChordKeys.
var chordOrder = []string{
	"C", "Cm", "C7", "Cmaj7", "Cm7",
	"C#", "C#m",
	"D", "Dm", "D7", "Dmaj7", "Dm7",
	"D#", "D#m",
	"E", "Em", "E7", "Emaj7", "Em7",
	"F", "Fm", "F7", "Fmaj7",
	"F#", "F#m",
	"G", "Gm", "G7", "Gmaj7", "Gm7",
	"G#", "G#m",
	"A", "Am", "A7", "Amaj7", "Am7",
	"A#", "A#m",
	"B", "Bm", "B7", "Bm7",
}

// ChordKeys returns all known chord keys in display order.
func ChordKeys() []string {
	out := make([]string, len(chordOrder))
	copy(out, chordOrder)
	return out
}

// KnownChord reports whether key is in the dictionary.
func KnownChord(key string) bool {
	_, ok := chords[key]
	return ok
}

// Variants returns how many voicing variants a chord key has (0 if unknown).
func Variants(key string) int {
	return len(chords[key])
}

// LookupVoicing returns the voicing for a chord key and variant index.
// Unknown keys degrade to "C" and out-of-range variants to variant 0; a
// lookup miss never fails, it just sounds wrong.
func LookupVoicing(key string, variant int) Voicing {
	vs, ok := chords[key]
	if !ok {
		vs = chords["C"]
	}
	if variant < 0 || variant >= len(vs) {
		variant = 0
	}
	return vs[variant]
}
