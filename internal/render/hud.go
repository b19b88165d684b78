package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// control is one of the board's command buttons.
type control struct {
	label  string
	action Action
}

var controls = []control{
	{"[^N New game]", ActionNewGame},
	{"[^R Restart]", ActionRestart},
	{"[Esc Quit]", ActionQuit},
}

const hintText = "Type a letter or click it.  Ctrl-C leaves."

// drawHUD renders the control buttons and the key hint under the letters.
func (s *Screen) drawHUD() {
	labels := make([]string, len(controls))
	for i, c := range controls {
		labels[i] = c.label
	}
	total := runewidth.StringWidth(strings.Join(labels, "  "))
	x := (BoardWidth - total) / 2
	for _, c := range controls {
		w := runewidth.StringWidth(c.label)
		s.drawText(x, rowControls, c.label, s.theme.Control)
		s.hits = append(s.hits, hitbox{x, x + w, rowControls, Input{Action: c.action}})
		x += w + 2
	}
	s.drawCentered(rowHint, hintText, s.theme.Hint)
}

func missesText(n, of int) string {
	return fmt.Sprintf("Misses: %d/%d", n, of)
}
