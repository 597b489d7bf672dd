package widgets

import (
	"fmt"
	"strings"

	"strummer/music"
)

// FretLabel renders a voicing in compact tab form, e.g. "x32010".
func FretLabel(v music.Voicing) string {
	var b strings.Builder
	for _, fret := range v.Frets {
		switch {
		case fret == music.Muted:
			b.WriteByte('x')
		case fret > 9:
			fmt.Fprintf(&b, "(%d)", fret)
		default:
			fmt.Fprintf(&b, "%d", fret)
		}
	}
	return b.String()
}

// RenderFretboard draws a chord box for a voicing: strings as columns (low
// E left), four frets deep, with the window shifted up the neck for barre
// shapes. Finger numbers mark the dots when known.
func RenderFretboard(v music.Voicing) string {
	// Pick the fret window.
	lo, hi := 0, 0
	for _, fret := range v.Frets {
		if fret <= 0 {
			continue
		}
		if lo == 0 || fret < lo {
			lo = fret
		}
		if fret > hi {
			hi = fret
		}
	}
	start := 1
	if hi > 4 {
		start = lo
	}
	depth := 4
	if hi-start+1 > depth {
		depth = hi - start + 1
	}

	var b strings.Builder

	// Open/muted marker row.
	b.WriteString("   ")
	for _, fret := range v.Frets {
		switch fret {
		case music.Muted:
			b.WriteString(" x")
		case 0:
			b.WriteString(" o")
		default:
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	if start == 1 {
		b.WriteString("    ═══════════\n")
	} else {
		b.WriteString("    ───────────\n")
	}

	for row := 0; row < depth; row++ {
		fret := start + row
		if row == 0 && start > 1 {
			fmt.Fprintf(&b, "%2d ", fret)
		} else {
			b.WriteString("   ")
		}

		for s, f := range v.Frets {
			if f == fret {
				finger := v.Fingers[s]
				if finger > 0 {
					fmt.Fprintf(&b, " %d", finger)
				} else {
					b.WriteString(" ●")
				}
			} else {
				b.WriteString(" │")
			}
		}
		b.WriteString("\n")
	}

	// String names under the box.
	b.WriteString("    E A D G B e")
	return b.String()
}
