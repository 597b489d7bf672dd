package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"strummer/music"
)

func TestFretLabel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("x32010", FretLabel(music.LookupVoicing("C", 0)))
	assert.Equal("xx0232", FretLabel(music.LookupVoicing("D", 0)))
	assert.Equal("022100", FretLabel(music.LookupVoicing("E", 0)))

	// Double-digit frets are parenthesized so the label stays unambiguous.
	v := music.Voicing{Frets: [6]int{music.Muted, 10, 12, 12, 11, 10}}
	assert.Equal("x(10)(12)(12)(11)(10)", FretLabel(v))
}

func TestRenderFretboardOpenChord(t *testing.T) {
	assert := assert.New(t)

	out := RenderFretboard(music.LookupVoicing("C", 0))
	lines := strings.Split(out, "\n")

	// Marker row: muted low E, open D and high E.
	assert.Contains(lines[0], "x")
	assert.Contains(lines[0], "o")

	// Open position shows the nut.
	assert.Contains(lines[1], "═")

	// String names at the bottom.
	assert.Contains(lines[len(lines)-1], "E A D G B e")
}

func TestRenderFretboardBarreShiftsWindow(t *testing.T) {
	assert := assert.New(t)

	// C barre shape at the 8th fret: no nut, window labeled with its fret.
	out := RenderFretboard(music.LookupVoicing("C", 1))
	assert.NotContains(out, "═")
	assert.Contains(out, " 8 ")
}
