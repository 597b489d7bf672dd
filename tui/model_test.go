package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"strummer/audio"
	"strummer/config"
	"strummer/pattern"
	"strummer/player"
	"strummer/theme"
)

type nullBackend struct{}

func (nullBackend) Start() error { return nil }
func (nullBackend) PlayNote(audio.Track, uint8, time.Duration, float64, time.Duration) error {
	return nil
}
func (nullBackend) PlayDrum(pattern.Voice, time.Duration, float64) error { return nil }
func (nullBackend) Close() error                                         { return nil }

func newTestModel() Model {
	ctrl := player.NewController(nullBackend{})
	return NewModel(ctrl, config.DefaultConfig(), theme.New())
}

func key(s string) tea.Msg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestChordNavigation(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel()
	assert.Equal("C", m.selectedChord())

	next, _ := m.Update(key("l"))
	m = next.(Model)
	assert.Equal("Cm", m.selectedChord())

	next, _ = m.Update(key("h"))
	m = next.(Model)
	assert.Equal("C", m.selectedChord())

	// Left edge stays put.
	next, _ = m.Update(key("h"))
	m = next.(Model)
	assert.Equal("C", m.selectedChord())
}

func TestVariantCycleWrapsAndResets(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel() // C has two variants
	next, _ := m.Update(key("j"))
	m = next.(Model)
	assert.Equal(1, m.variant)

	next, _ = m.Update(key("j"))
	m = next.(Model)
	assert.Equal(0, m.variant)

	next, _ = m.Update(key("k"))
	m = next.(Model)
	assert.Equal(1, m.variant)

	// Moving to another chord resets the variant.
	next, _ = m.Update(key("l"))
	m = next.(Model)
	assert.Equal(0, m.variant)
}

func TestSpaceTogglesSingleChordPlayback(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel()
	next, _ := m.Update(key(" "))
	m = next.(Model)
	assert.Equal(player.ModeSingle, m.Ctrl.Mode())

	next, _ = m.Update(key(" "))
	m = next.(Model)
	assert.Equal(player.ModeIdle, m.Ctrl.Mode())
}

func TestAppendAndRemoveSequenceBars(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel()
	next, _ := m.Update(key("a"))
	m = next.(Model)
	assert.Len(m.Ctrl.SequenceEntries(), 2)

	next, _ = m.Update(key("x"))
	m = next.(Model)
	assert.Len(m.Ctrl.SequenceEntries(), 1)

	// The last bar cannot be dropped.
	next, _ = m.Update(key("x"))
	m = next.(Model)
	assert.Len(m.Ctrl.SequenceEntries(), 1)
}

func TestProgressionKeysUseSelectedRoot(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel()

	// Move selection to D, then load progression 1 (I-IV-V).
	for m.selectedChord() != "D" {
		next, _ := m.Update(key("l"))
		m = next.(Model)
	}
	next, _ := m.Update(key("1"))
	m = next.(Model)

	entries := m.Ctrl.SequenceEntries()
	assert.Len(entries, 3)
	assert.Equal("D", entries[0].ChordKey)
	assert.Equal("G", entries[1].ChordKey)
	assert.Equal("A", entries[2].ChordKey)
}

func TestQuitStopsPlaybackAndSavesConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert := assert.New(t)

	m := newTestModel()
	assert.NoError(m.Ctrl.PlaySingle("C", 0, true))

	next, cmd := m.Update(key("q"))
	m = next.(Model)
	assert.True(m.quitting)
	assert.NotNil(cmd)
	assert.Equal(player.ModeIdle, m.Ctrl.Mode())

	// The saved file is loadable and carries the session settings.
	cfg, err := config.Load()
	assert.NoError(err)
	assert.Equal(m.Ctrl.Rhythm(), cfg.Rhythm)
}

func TestViewRendersMainSections(t *testing.T) {
	assert := assert.New(t)

	m := newTestModel()
	out := m.View()
	assert.Contains(out, "strummer")
	assert.Contains(out, "chord: C (x32010)")
	assert.Contains(out, "steps:")
	assert.Contains(out, "bars:")
	assert.Contains(out, "drums:on")
}

func TestCycleHelpers(t *testing.T) {
	assert := assert.New(t)

	ids := []string{"a", "b", "c"}
	assert.Equal("b", cycleNext(ids, "a"))
	assert.Equal("a", cycleNext(ids, "c"))
	assert.Equal("c", cyclePrev(ids, "a"))
	assert.Equal("a", cycleNext(ids, "not-there"))
}
