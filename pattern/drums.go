package pattern

// DrumStepsPerBar is the drum resolution: 16 sixteenth-note slots per bar,
// twice the strum resolution and phase-locked 2:1 with it.
const DrumStepsPerBar = 16

// Voice is one percussion voice.
type Voice uint8

const (
	VoiceKick Voice = iota
	VoiceSnare
	VoiceHatClosed
	VoiceHatOpen
)

// DrumPattern holds three parallel 16-slot sequences, written as strings for
// readability: 'x' = hit, '.' = rest, and on the hat row 'o' = open hit.
type DrumPattern struct {
	Name  string
	Kick  string
	Snare string
	Hat   string
}

var drumPatterns = map[string]DrumPattern{
	"rock": {
		Name:  "Rock",
		Kick:  "x...x...x...x...",
		Snare: "....x.......x...",
		Hat:   "x.x.x.x.x.x.x.x.",
	},
	"pop": {
		Name:  "Pop",
		Kick:  "x.....x.x.......",
		Snare: "....x.......x...",
		Hat:   "x.x.x.x.x.x.x.o.",
	},
	"funk": {
		Name:  "Funk",
		Kick:  "x..x..x...x..x..",
		Snare: "....x.......x..x",
		Hat:   "x.xxx.xxx.xxx.xx",
	},
	"disco": {
		Name:  "Disco",
		Kick:  "x...x...x...x...",
		Snare: "....x.......x...",
		Hat:   "..o...o...o...o.",
	},
	"reggae": {
		Name:  "Reggae One Drop",
		Kick:  "........x.......",
		Snare: "........x.......",
		Hat:   "x.x.x.x.x.x.x.x.",
	},
	"bossa": {
		Name:  "Bossa Nova",
		Kick:  "x..x..x.x..x..x.",
		Snare: "...x..x....x..x.",
		Hat:   "x.x.x.x.x.x.x.x.",
	},
	"shuffle": {
		Name:  "Blues Shuffle",
		Kick:  "x.......x.......",
		Snare: "....x.......x...",
		Hat:   "x..xx..xx..xx..x",
	},
	"metal": {
		Name:  "Metal",
		Kick:  "x.xxx.xxx.xxx.xx",
		Snare: "....x.......x...",
		Hat:   "x.x.x.x.x.x.x.x.",
	},
	"hiphop": {
		Name:  "Hip-Hop",
		Kick:  "x.....x...x.....",
		Snare: "....x.......x...",
		Hat:   "x.x.x.x.x.x.xxx.",
	},
	"house": {
		Name:  "House",
		Kick:  "x...x...x...x...",
		Snare: "................",
		Hat:   "..o...o...o...o.",
	},
	"halftime": {
		Name:  "Half Time",
		Kick:  "x.........x.....",
		Snare: "........x.......",
		Hat:   "x...x...x...x...",
	},
}

var drumOrder = []string{
	"rock", "pop", "funk", "disco", "reggae", "bossa", "shuffle", "metal",
	"hiphop", "house", "halftime",
}

// DrumIDs returns the known drum pattern ids in display order.
func DrumIDs() []string {
	out := make([]string, len(drumOrder))
	copy(out, drumOrder)
	return out
}

// GetDrumPattern returns a drum pattern by id, defaulting to "rock".
func GetDrumPattern(id string) DrumPattern {
	if p, ok := drumPatterns[id]; ok {
		return p
	}
	return drumPatterns["rock"]
}

// DrumHits returns the voices that fire at a 16th-note slot, evaluated at
// step mod 16.
//
// TODO: the bar player polls this only at even slots (2*i per strum step),
// so odd-slot hits in these tables never sound during playback; kept for
// compatibility with the original scheduler, needs product review.
func DrumHits(patternID string, step int) []Voice {
	p := GetDrumPattern(patternID)
	slot := ((step % DrumStepsPerBar) + DrumStepsPerBar) % DrumStepsPerBar

	var voices []Voice
	if slot < len(p.Kick) && p.Kick[slot] == 'x' {
		voices = append(voices, VoiceKick)
	}
	if slot < len(p.Snare) && p.Snare[slot] == 'x' {
		voices = append(voices, VoiceSnare)
	}
	if slot < len(p.Hat) {
		switch p.Hat[slot] {
		case 'x':
			voices = append(voices, VoiceHatClosed)
		case 'o':
			voices = append(voices, VoiceHatOpen)
		}
	}
	return voices
}
