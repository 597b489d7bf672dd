package pattern

// StepsPerBar is the strum resolution: 8 eighth-note steps per 4/4 bar.
const StepsPerBar = 8

// Stroke is one strum-step symbol.
type Stroke uint8

const (
	Rest Stroke = iota
	Down
	Up
)

// Rhythm is an 8-step strum pattern. Accents lists the step indices (0-7)
// that get full velocity.
type Rhythm struct {
	Name    string
	Steps   [StepsPerBar]Stroke
	Accents []int
}

// AccentSet expands Accents into a step-indexed lookup.
func (r Rhythm) AccentSet() [StepsPerBar]bool {
	var set [StepsPerBar]bool
	for _, i := range r.Accents {
		if i >= 0 && i < StepsPerBar {
			set[i] = true
		}
	}
	return set
}

var rhythms = map[string]Rhythm{
	"downs": {
		Name:    "Straight Downs",
		Steps:   [8]Stroke{Down, Down, Down, Down, Down, Down, Down, Down},
		Accents: []int{0, 4},
	},
	"quarters": {
		Name:    "Quarter Notes",
		Steps:   [8]Stroke{Down, Rest, Down, Rest, Down, Rest, Down, Rest},
		Accents: []int{0, 4},
	},
	"folk": {
		Name:    "Folk Strum",
		Steps:   [8]Stroke{Down, Rest, Down, Up, Rest, Up, Down, Up},
		Accents: []int{0, 2, 6},
	},
	"pop": {
		Name:    "Pop Strum",
		Steps:   [8]Stroke{Down, Rest, Down, Up, Rest, Up, Rest, Up},
		Accents: []int{0, 2},
	},
	"eighths": {
		Name:    "Down Up Eighths",
		Steps:   [8]Stroke{Down, Up, Down, Up, Down, Up, Down, Up},
		Accents: []int{0, 4},
	},
	"reggae": {
		Name:    "Reggae Skank",
		Steps:   [8]Stroke{Rest, Rest, Down, Rest, Rest, Rest, Down, Rest},
		Accents: []int{2, 6},
	},
	"ballad": {
		Name:    "Slow Ballad",
		Steps:   [8]Stroke{Down, Rest, Rest, Up, Down, Rest, Rest, Up},
		Accents: []int{0, 4},
	},
	"sixteen-feel": {
		Name:    "Busy Strum",
		Steps:   [8]Stroke{Down, Up, Down, Up, Down, Rest, Down, Up},
		Accents: []int{0, 2, 4, 6},
	},
}

var rhythmOrder = []string{
	"downs", "quarters", "folk", "pop", "eighths", "reggae", "ballad", "sixteen-feel",
}

// RhythmIDs returns the known rhythm pattern ids in display order.
func RhythmIDs() []string {
	out := make([]string, len(rhythmOrder))
	copy(out, rhythmOrder)
	return out
}

// GetRhythm returns a rhythm pattern by id, defaulting to "folk".
func GetRhythm(id string) Rhythm {
	if r, ok := rhythms[id]; ok {
		return r
	}
	return rhythms["folk"]
}
