package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/debounce"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"strummer/config"
	"strummer/music"
	"strummer/pattern"
	"strummer/player"
	"strummer/theme"
	"strummer/widgets"
)

type Model struct {
	Ctrl  *player.Controller
	Cfg   *config.Config
	Theme *theme.Theme

	chordKeys []string
	chordIdx  int
	variant   int

	// Tempo changes restart the current bar, so rapid +/- presses are
	// coalesced before they reach the controller.
	tempoDebounce func(func())
	pendingTempo  float64

	startErr error
	quitting bool
}

type UpdateMsg struct{}

func NewModel(ctrl *player.Controller, cfg *config.Config, th *theme.Theme) Model {
	return Model{
		Ctrl:          ctrl,
		Cfg:           cfg,
		Theme:         th,
		chordKeys:     music.ChordKeys(),
		tempoDebounce: debounce.New(150 * time.Millisecond),
		pendingTempo:  ctrl.Tempo(),
	}
}

func ListenForUpdates(ctrl *player.Controller) tea.Cmd {
	return func() tea.Msg {
		<-ctrl.UpdateChan
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForUpdates(m.Ctrl)
}

func (m Model) selectedChord() string {
	return m.chordKeys[m.chordIdx]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Ctrl.Stop()
			m.saveConfig()
			return m, tea.Quit

		case " ":
			if m.Ctrl.Mode() == player.ModeSingle {
				m.Ctrl.Stop()
			} else {
				m.startErr = m.Ctrl.PlaySingle(m.selectedChord(), m.variant, true)
			}

		case "enter":
			if m.Ctrl.Mode() == player.ModeSequence {
				m.Ctrl.Stop()
			} else {
				m.startErr = m.Ctrl.PlaySequence(true)
			}

		case "esc":
			m.Ctrl.Stop()

		case "h", "left":
			if m.chordIdx > 0 {
				m.chordIdx--
				m.variant = 0
			}
		case "l", "right":
			if m.chordIdx < len(m.chordKeys)-1 {
				m.chordIdx++
				m.variant = 0
			}
		case "j", "down":
			if n := music.Variants(m.selectedChord()); n > 0 {
				m.variant = (m.variant + 1) % n
			}
		case "k", "up":
			if n := music.Variants(m.selectedChord()); n > 0 {
				m.variant = (m.variant + n - 1) % n
			}

		case "+", "=":
			m.nudgeTempo(5)
		case "-", "_":
			m.nudgeTempo(-5)

		case "<":
			m.Ctrl.SetSwing(m.Ctrl.Swing() - 0.1)
		case ">":
			m.Ctrl.SetSwing(m.Ctrl.Swing() + 0.1)

		case "[":
			m.Ctrl.SetRhythm(cyclePrev(pattern.RhythmIDs(), m.Ctrl.Rhythm()))
		case "]":
			m.Ctrl.SetRhythm(cycleNext(pattern.RhythmIDs(), m.Ctrl.Rhythm()))
		case "{":
			m.Ctrl.SetDrumPattern(cyclePrev(pattern.DrumIDs(), m.Ctrl.DrumPattern()))
		case "}":
			m.Ctrl.SetDrumPattern(cycleNext(pattern.DrumIDs(), m.Ctrl.DrumPattern()))
		case "B":
			m.Ctrl.SetBassPattern(cycleNext(pattern.BassIDs(), m.Ctrl.BassPattern()))

		case "d":
			m.Ctrl.SetDrumsEnabled(!m.Ctrl.DrumsEnabled())
		case "b":
			m.Ctrl.SetBassEnabled(!m.Ctrl.BassEnabled())

		case "a":
			m.Ctrl.AppendBar(m.selectedChord(), m.variant)
		case "x":
			entries := m.Ctrl.SequenceEntries()
			m.Ctrl.RemoveBar(len(entries) - 1)

		case "r":
			m.startErr = m.Ctrl.PlayReference(9) // A

		case "1", "2", "3", "4", "5", "6":
			ids := music.ProgressionIDs()
			idx := int(msg.String()[0] - '1')
			if idx < len(ids) {
				voicing := music.LookupVoicing(m.selectedChord(), m.variant)
				m.Ctrl.LoadProgression(voicing.Root, ids[idx])
			}
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Ctrl)
	}

	return m, nil
}

// nudgeTempo shows the new tempo immediately but applies it debounced.
func (m *Model) nudgeTempo(delta float64) {
	m.pendingTempo += delta
	if m.pendingTempo < player.MinTempo {
		m.pendingTempo = player.MinTempo
	}
	if m.pendingTempo > player.MaxTempo {
		m.pendingTempo = player.MaxTempo
	}
	target := m.pendingTempo
	ctrl := m.Ctrl
	m.tempoDebounce(func() {
		ctrl.SetTempo(target)
	})
}

func (m *Model) saveConfig() {
	m.Cfg.Tempo = m.Ctrl.Tempo()
	m.Cfg.Swing = m.Ctrl.Swing()
	m.Cfg.StrumMs = int(m.Ctrl.StrumInterval() / time.Millisecond)
	m.Cfg.Rhythm = m.Ctrl.Rhythm()
	m.Cfg.DrumPattern = m.Ctrl.DrumPattern()
	m.Cfg.BassPattern = m.Ctrl.BassPattern()
	g, b, d := m.Ctrl.Volumes()
	m.Cfg.Mixer.GuitarVolume = g
	m.Cfg.Mixer.BassVolume = b
	m.Cfg.Mixer.DrumVolume = d
	m.Cfg.Mixer.BassEnabled = m.Ctrl.BassEnabled()
	m.Cfg.Mixer.DrumsEnabled = m.Ctrl.DrumsEnabled()
	m.Cfg.Save()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mode, step, barIndex, _ := m.Ctrl.State()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	activeStyle := lipgloss.NewStyle().Foreground(m.Theme.Active())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	playState := "STOP"
	if mode != player.ModeIdle {
		playState = strings.ToUpper(mode.String())
	}
	header := headerStyle.Render(fmt.Sprintf(
		"strummer  %s  %3.0fbpm  swing:%.1f  %s/%s/%s",
		playState, m.pendingTempo, m.Ctrl.Swing(),
		m.Ctrl.Rhythm(), m.Ctrl.DrumPattern(), m.Ctrl.BassPattern()))

	// Chord selector + fretboard
	voicing := music.LookupVoicing(m.selectedChord(), m.variant)
	chordLine := fmt.Sprintf("chord: %s (%s)  variant %d/%d",
		m.selectedChord(), widgets.FretLabel(voicing), m.variant+1, music.Variants(m.selectedChord()))
	board := widgets.RenderFretboard(voicing)

	// Rhythm row with playhead
	rhythm := pattern.GetRhythm(m.Ctrl.Rhythm())
	accents := rhythm.AccentSet()
	var row strings.Builder
	row.WriteString("steps: ")
	for i, stroke := range rhythm.Steps {
		var ch rune
		switch stroke {
		case pattern.Down:
			ch = m.Theme.Symbols.StepDown
		case pattern.Up:
			ch = m.Theme.Symbols.StepUp
		default:
			ch = m.Theme.Symbols.StepEmpty
		}
		cell := string(ch)
		if accents[i] {
			cell += string(m.Theme.Symbols.Accent)
		} else {
			cell += " "
		}
		if mode != player.ModeIdle && i == step {
			cell = activeStyle.Render(cell)
		}
		row.WriteString(cell + " ")
	}

	// Sequence strip
	var seq strings.Builder
	seq.WriteString("bars:  ")
	for i, entry := range m.Ctrl.SequenceEntries() {
		label := entry.ChordKey
		if mode == player.ModeSequence && i == barIndex {
			label = activeStyle.Render(string(m.Theme.Symbols.BarCurrent) + label)
		}
		seq.WriteString(label + "  ")
	}

	// Mixer line
	onOff := func(on bool) string {
		if on {
			return "on"
		}
		return "off"
	}
	mixer := dimStyle.Render(fmt.Sprintf("drums:%s  bass:%s", onOff(m.Ctrl.DrumsEnabled()), onOff(m.Ctrl.BassEnabled())))

	help := dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "h/l  j/k", Desc: "chord / voicing variant"},
			{Key: "space", Desc: "strum this chord (loop)"},
			{Key: "enter", Desc: "play sequence (loop)"},
			{Key: "a / x", Desc: "append / drop sequence bar"},
			{Key: "1-6", Desc: "load progression from this root"},
			{Key: "[ ] { } B", Desc: "rhythm / drum / bass pattern"},
			{Key: "+/- < >", Desc: "tempo, swing"},
			{Key: "d b r q", Desc: "drums, bass, reference A, quit"},
		}},
	}))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(chordLine)
	out.WriteString("\n")
	out.WriteString(board)
	out.WriteString("\n\n")
	out.WriteString(row.String())
	out.WriteString("\n")
	out.WriteString(seq.String())
	out.WriteString("\n")
	out.WriteString(mixer)
	out.WriteString("\n\n")
	out.WriteString(help)

	if m.startErr != nil {
		out.WriteString("\n\n")
		out.WriteString(warnStyle.Render("audio: " + m.startErr.Error()))
	}

	return out.String()
}

func cycleNext(ids []string, current string) string {
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

func cyclePrev(ids []string, current string) string {
	for i, id := range ids {
		if id == current {
			return ids[(i+len(ids)-1)%len(ids)]
		}
	}
	return ids[0]
}
