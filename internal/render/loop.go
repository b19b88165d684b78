package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Controller is the set of presenter calls the event loop makes.
// *ui.Presenter satisfies it.
type Controller interface {
	Start()
	Activate(letter rune) error
	NewGame()
	Restart()
	Quit()
}

const dismissText = "[press any key]"

// Run starts the controller and handles one event at a time until the
// player leaves or the event source closes. Every presenter call, notice
// included, completes before the next event is read.
func (s *Screen) Run(c Controller) error {
	c.Start()
	leave := false
	for !leave {
		s.DrawFrame()
		ev, ok := <-s.events
		if !ok {
			return nil // screen closed / disconnected
		}
		var in Input
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
			continue
		case *tcell.EventKey:
			in = keyToInput(ev)
		case *tcell.EventMouse:
			if s.clicked(ev) {
				in = s.hitTest(ev.Position())
			}
		}

		switch in.Action {
		case ActionGuess:
			if err := c.Activate(in.Letter); err != nil {
				return err
			}
		case ActionNewGame:
			c.NewGame()
		case ActionRestart:
			c.Restart()
		case ActionQuit:
			c.Quit()
		case ActionLeave:
			leave = true
		}
	}
	return nil
}

// ShowNotice implements ui.Surface. It draws a modal box over the board and
// blocks until a key press or click. A closed event source also dismisses it.
func (s *Screen) ShowNotice(message string) {
	s.notice = message
	defer func() { s.notice = "" }()
	for {
		s.DrawFrame()
		ev, ok := <-s.events
		if !ok {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			return
		case *tcell.EventMouse:
			if s.clicked(ev) {
				return
			}
		}
	}
}

// clicked tracks button 1 and reports a press, ignoring drags and releases.
func (s *Screen) clicked(ev *tcell.EventMouse) bool {
	down := ev.Buttons()&tcell.Button1 != 0
	press := down && !s.pressed
	s.pressed = down
	return press
}

// drawNotice renders a bordered message box centred on the board.
func (s *Screen) drawNotice(message string) {
	lines := strings.Split(message, "\n")
	lines = append(lines, "", dismissText)

	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	width := min(inner+4, BoardWidth)
	boxH := len(lines) + 2
	x0 := (BoardWidth - width) / 2
	y0 := (BoardHeight - boxH) / 2

	for row := y0; row < y0+boxH; row++ {
		for col := x0; col < x0+width; col++ {
			s.putRune(col, row, ' ', tcell.StyleDefault)
		}
	}
	for col := x0; col < x0+width; col++ {
		s.putRune(col, y0, '─', s.theme.Border)
		s.putRune(col, y0+boxH-1, '─', s.theme.Border)
	}
	for row := y0; row < y0+boxH; row++ {
		s.putRune(x0, row, '│', s.theme.Border)
		s.putRune(x0+width-1, row, '│', s.theme.Border)
	}
	s.putRune(x0, y0, '┌', s.theme.Border)
	s.putRune(x0+width-1, y0, '┐', s.theme.Border)
	s.putRune(x0, y0+boxH-1, '└', s.theme.Border)
	s.putRune(x0+width-1, y0+boxH-1, '┘', s.theme.Border)

	for i, l := range lines {
		style := s.theme.Notice
		if l == dismissText {
			style = s.theme.Dismiss
		}
		s.drawText(x0+2, y0+1+i, l, style)
	}
}
