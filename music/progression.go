package music

import "strings"

// degree maps a roman numeral (case-sensitive base) to its semitone offset
// within the major scale. Lowercase numerals are minor.
type degree struct {
	Semitones int
	Minor     bool
	Seventh   bool
}

var numerals = map[string]degree{
	"I":   {Semitones: 0},
	"I7":  {Semitones: 0, Seventh: true},
	"ii":  {Semitones: 2, Minor: true},
	"ii7": {Semitones: 2, Minor: true, Seventh: true},
	"iii": {Semitones: 4, Minor: true},
	"IV":  {Semitones: 5},
	"IV7": {Semitones: 5, Seventh: true},
	"V":   {Semitones: 7},
	"V7":  {Semitones: 7, Seventh: true},
	"vi":  {Semitones: 9, Minor: true},
	"vii": {Semitones: 11, Minor: true},
}

// progressions maps a progression id to its roman numeral template.
var progressions = map[string][]string{
	"I-IV-V":       {"I", "IV", "V"},
	"I-V-vi-IV":    {"I", "V", "vi", "IV"},
	"ii-V-I":       {"ii", "V7", "I"},
	"I-vi-IV-V":    {"I", "vi", "IV", "V"},
	"vi-IV-I-V":    {"vi", "IV", "I", "V"},
	"12-bar-blues": {"I7", "I7", "I7", "I7", "IV7", "IV7", "I7", "I7", "V7", "IV7", "I7", "V7"},
}

// progressionOrder is the display order for ProgressionIDs.
var progressionOrder = []string{
	"I-IV-V", "I-V-vi-IV", "ii-V-I", "I-vi-IV-V", "vi-IV-I-V", "12-bar-blues",
}

// ProgressionIDs returns the known progression ids in display order.
func ProgressionIDs() []string {
	out := make([]string, len(progressionOrder))
	copy(out, progressionOrder)
	return out
}

// Expand turns a progression template into concrete chord symbols for a
// tonic pitch class. "I-IV-V" from D (pitch class 2) gives [D G A].
// Unknown progression ids expand to just the tonic major chord; unknown
// numerals within a template resolve to the tonic.
func Expand(tonicPitchClass int, progressionID string) []string {
	tonic := ((tonicPitchClass % 12) + 12) % 12
	template, ok := progressions[progressionID]
	if !ok {
		return []string{NoteNames[tonic]}
	}
	out := make([]string, 0, len(template))
	for _, numeral := range template {
		deg, ok := numerals[numeral]
		if !ok {
			out = append(out, NoteNames[tonic])
			continue
		}
		symbol := NoteNames[(tonic+deg.Semitones)%12]
		if deg.Minor {
			symbol += "m"
		}
		if deg.Seventh {
			symbol += "7"
		}
		out = append(out, symbol)
	}
	return out
}

// SymbolToChordKey maps a chord symbol to a dictionary key. Flat spellings
// are normalized to sharps and unsupported qualities are stripped down until
// something matches; if nothing plausible does, "C" is returned so playback
// degrades instead of failing.
func SymbolToChordKey(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if KnownChord(symbol) {
		return symbol
	}

	// Split the note name off the quality suffix.
	split := 1
	if len(symbol) > 1 && (symbol[1] == '#' || symbol[1] == 'b') {
		split = 2
	}
	if len(symbol) < split {
		return "C"
	}
	pc := ParsePitchClass(symbol[:split])
	if pc < 0 {
		return "C"
	}
	name := NoteNames[pc]
	quality := symbol[split:]

	for _, candidate := range []string{name + quality, name + simplifyQuality(quality), name} {
		if KnownChord(candidate) {
			return candidate
		}
	}
	return "C"
}

// simplifyQuality reduces an unsupported quality to the nearest stocked one.
func simplifyQuality(q string) string {
	switch {
	case strings.HasPrefix(q, "maj7"):
		return "maj7"
	case strings.HasPrefix(q, "m7"), strings.HasPrefix(q, "min7"):
		return "m7"
	case strings.HasPrefix(q, "m"), strings.HasPrefix(q, "min"), strings.HasPrefix(q, "dim"):
		return "m"
	case strings.Contains(q, "7"), strings.Contains(q, "9"), strings.Contains(q, "13"):
		return "7"
	default:
		return ""
	}
}
