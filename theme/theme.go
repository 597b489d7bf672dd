package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Symbols Symbols

	fg      lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	active  lipgloss.Color
	warning lipgloss.Color
}

type Symbols struct {
	StepEmpty    rune // · rest step
	StepDown     rune // ↓ downstroke
	StepUp       rune // ↑ upstroke
	StepPlayhead rune // ▶ current playing
	BarCurrent   rune // ▶ current bar in sequence
	Accent       rune // ' accent marker
}

func New() *Theme {
	return &Theme{
		Symbols: Symbols{
			StepEmpty:    '·',
			StepDown:     '↓',
			StepUp:       '↑',
			StepPlayhead: '▶',
			BarCurrent:   '▶',
			Accent:       '\'',
		},
		fg:      lipgloss.Color("#d7c6e8"),
		muted:   lipgloss.Color("#6b5b82"),
		accent:  lipgloss.Color("#c2479b"),
		active:  lipgloss.Color("#ea4974"),
		warning: lipgloss.Color("#fd9d6e"),
	}
}

func (t *Theme) FG() lipgloss.Color      { return t.fg }
func (t *Theme) Muted() lipgloss.Color   { return t.muted }
func (t *Theme) Accent() lipgloss.Color  { return t.accent }
func (t *Theme) Active() lipgloss.Color  { return t.active }
func (t *Theme) Warning() lipgloss.Color { return t.warning }
