package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSequence(t *testing.T) {
	assert := assert.New(t)

	s := NewSequence("C", "Am", "F", "G")
	assert.Equal(4, s.Len())
	assert.Equal(BarEntry{ChordKey: "Am", Degree: -1}, s.Entry(1))
}

func TestFromProgressionKeepsDegrees(t *testing.T) {
	assert := assert.New(t)

	s := FromProgression(2, "I-IV-V") // D G A
	assert.Equal(3, s.Len())
	assert.Equal(BarEntry{ChordKey: "D", Degree: 0}, s.Entry(0))
	assert.Equal(BarEntry{ChordKey: "G", Degree: 1}, s.Entry(1))
	assert.Equal(BarEntry{ChordKey: "A", Degree: 2}, s.Entry(2))
}

func TestEntryClampsIndex(t *testing.T) {
	assert := assert.New(t)

	s := NewSequence("C", "G")
	assert.Equal("C", s.Entry(-3).ChordKey)
	assert.Equal("G", s.Entry(99).ChordKey)

	// An empty sequence still answers with something playable.
	empty := &Sequence{}
	assert.Equal("C", empty.Entry(0).ChordKey)
}

func TestRemoveKeepsAtLeastOneBar(t *testing.T) {
	assert := assert.New(t)

	s := NewSequence("C", "G")
	assert.True(s.Remove(0))
	assert.Equal(1, s.Len())
	assert.Equal("G", s.Entry(0).ChordKey)

	// The last bar never goes away.
	assert.False(s.Remove(0))
	assert.Equal(1, s.Len())

	// Out-of-range indices are refused.
	s.Append("Am", 0)
	assert.False(s.Remove(5))
	assert.False(s.Remove(-1))
	assert.Equal(2, s.Len())
}

func TestSetChordResetsVariantAndDegree(t *testing.T) {
	assert := assert.New(t)

	s := FromProgression(0, "I-IV-V")
	s.SetVariant(0, 1)
	assert.Equal(1, s.Entry(0).Variant)

	s.SetChord(0, "Em")
	assert.Equal(BarEntry{ChordKey: "Em", Variant: 0, Degree: -1}, s.Entry(0))

	// Other bars are untouched.
	assert.Equal("F", s.Entry(1).ChordKey)
	assert.Equal(1, s.Entry(1).Degree)
}

func TestEntriesReturnsCopy(t *testing.T) {
	assert := assert.New(t)

	s := NewSequence("C", "G")
	got := s.Entries()
	got[0].ChordKey = "B"
	assert.Equal("C", s.Entry(0).ChordKey)
}
