package pattern

// BassStep is one entry in a bass pattern rule table: either a semitone
// offset from the root, or an explicit rest.
type BassStep struct {
	Offset int
	Rest   bool
}

// Bass patterns are sparse rule tables keyed by strum step (mod 8). Steps
// without an entry play the plain root; an entry with Rest silences the step.
var bassPatterns = map[string]map[int]BassStep{
	"steady": {}, // root on every step
	"root-fifth": {
		1: {Rest: true}, 2: {Offset: 7}, 3: {Rest: true},
		5: {Rest: true}, 6: {Offset: 7}, 7: {Rest: true},
	},
	"walking": {
		1: {Rest: true}, 2: {Offset: 4}, 3: {Rest: true},
		4: {Offset: 7}, 5: {Rest: true}, 6: {Offset: 9}, 7: {Rest: true},
	},
	"jazz-walk": {
		1: {Offset: 2}, 2: {Offset: 4}, 3: {Offset: 5},
		4: {Offset: 7}, 5: {Offset: 9}, 6: {Offset: 11}, 7: {Offset: 12},
	},
	"swing": {
		1: {Rest: true}, 2: {Offset: 7}, 3: {Rest: true},
		4: {Offset: 0}, 5: {Rest: true}, 6: {Offset: 7}, 7: {Offset: 5},
	},
	"bossa": {
		1: {Rest: true}, 2: {Rest: true}, 3: {Offset: 7},
		4: {Offset: 7}, 5: {Rest: true}, 6: {Rest: true}, 7: {Offset: 0},
	},
	"reggae": {
		0: {Rest: true}, 1: {Rest: true}, 3: {Offset: 7},
		5: {Rest: true}, 6: {Offset: 4}, 7: {Rest: true},
	},
	"disco": {
		1: {Offset: 12}, 3: {Offset: 12}, 5: {Offset: 12}, 7: {Offset: 12},
	},
	"funk": {
		1: {Rest: true}, 2: {Rest: true}, 3: {Offset: 10},
		5: {Offset: 12}, 6: {Rest: true}, 7: {Offset: 10},
	},
	"rock": {
		1: {Rest: true}, 3: {Rest: true}, 5: {Rest: true}, 7: {Rest: true},
	},
	"blues": {
		1: {Offset: 4}, 2: {Offset: 7}, 3: {Offset: 9},
		4: {Offset: 12}, 5: {Offset: 9}, 6: {Offset: 7}, 7: {Offset: 4},
	},
	"latin": {
		1: {Rest: true}, 2: {Rest: true}, 3: {Offset: 7},
		4: {Rest: true}, 5: {Rest: true}, 6: {Offset: 0}, 7: {Rest: true},
	},
	"country": {
		1: {Rest: true}, 2: {Offset: 7}, 3: {Rest: true},
		4: {Offset: 0}, 5: {Rest: true}, 6: {Offset: 7}, 7: {Offset: 9},
	},
	"octave": {
		1: {Offset: 12}, 2: {Offset: 0}, 3: {Offset: 12},
		4: {Offset: 0}, 5: {Offset: 12}, 6: {Offset: 0}, 7: {Offset: 12},
	},
	"arpeggio": {
		1: {Offset: 4}, 2: {Offset: 7}, 3: {Offset: 12},
		4: {Offset: 7}, 5: {Offset: 4}, 6: {Offset: 0}, 7: {Offset: 4},
	},
	"metal": {}, // relentless root eighths
	"punk": {
		4: {Offset: 0}, // root eighths, flat dynamics
	},
	"hip-hop": {
		1: {Rest: true}, 2: {Rest: true}, 4: {Rest: true},
		5: {Rest: true}, 6: {Offset: 0}, 7: {Rest: true},
	},
	"trap": {
		1: {Rest: true}, 2: {Rest: true}, 3: {Rest: true},
		4: {Rest: true}, 5: {Offset: 12}, 6: {Rest: true}, 7: {Rest: true},
	},
	"drum-and-bass": {
		1: {Rest: true}, 2: {Rest: true}, 3: {Offset: 12},
		4: {Rest: true}, 5: {Rest: true}, 6: {Offset: 0}, 7: {Offset: -2},
	},
	"techno": {
		1: {Rest: true}, 3: {Rest: true}, 5: {Rest: true}, 7: {Rest: true},
	},
	"house": {
		0: {Rest: true}, 2: {Rest: true}, 4: {Rest: true}, 6: {Rest: true},
	},
	"dubstep": {
		1: {Rest: true}, 2: {Rest: true}, 3: {Rest: true},
		5: {Rest: true}, 6: {Offset: -2}, 7: {Rest: true},
	},
	"ska": {
		1: {Offset: 4}, 2: {Offset: 7}, 3: {Offset: 9},
		4: {Offset: 7}, 5: {Offset: 9}, 6: {Offset: 7}, 7: {Offset: 4},
	},
}

var bassOrder = []string{
	"steady", "root-fifth", "walking", "jazz-walk", "swing", "bossa",
	"reggae", "disco", "funk", "rock", "blues", "latin", "country", "octave",
	"arpeggio", "metal", "punk", "hip-hop", "trap", "drum-and-bass", "techno",
	"house", "dubstep", "ska",
}

// BassIDs returns the known bass pattern ids in display order.
func BassIDs() []string {
	out := make([]string, len(bassOrder))
	copy(out, bassOrder)
	return out
}

// BassNote decides the bass voice's note for a strum step, evaluated at
// step mod 8. The returned pitch sits an octave below the supplied root plus
// the pattern's semitone offset; ok is false on a rest. Unknown pattern ids
// fall back to root on every step. Pure: same inputs, same answer.
func BassNote(rootPitch uint8, patternID string, step int) (pitch uint8, ok bool) {
	slot := ((step % StepsPerBar) + StepsPerBar) % StepsPerBar

	offset := 0
	table, known := bassPatterns[patternID]
	if known {
		if entry, listed := table[slot]; listed {
			if entry.Rest {
				return 0, false
			}
			offset = entry.Offset
		}
	}

	p := int(rootPitch) - 12 + offset
	if p < 0 || p > 127 {
		return 0, false
	}
	return uint8(p), true
}
