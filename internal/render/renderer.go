// Package render draws the hangman board on a tcell screen and turns key
// presses and mouse clicks into presenter calls.
package render

import (
	"hangman/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Board rows, in board coordinates.
const (
	rowTitle    = 1
	rowGallows  = 3
	rowWord     = 11
	rowMisses   = 12
	rowLetters  = 14 // first of two letter rows
	rowControls = 18
	rowHint     = 20

	lettersPerRow = 13
	letterStride  = 4 // "[A]" plus a gap
)

// hitbox is a clickable region of one board row.
type hitbox struct {
	x0, x1, y int // board coords, x1 exclusive
	input     Input
}

// Screen implements ui.Surface on top of a tcell screen. It keeps the
// last value set for each element and redraws the whole board on demand.
type Screen struct {
	screen  tcell.Screen
	camera  *Camera
	theme   Theme
	events  <-chan tcell.Event
	text    map[ui.ElementID]string
	visible map[ui.ElementID]bool
	letters []rune
	enabled map[rune]bool
	hits    []hitbox
	notice  string // non-empty while a notice is up
	pressed bool   // mouse button 1 held
}

// NewScreen wraps an initialised tcell screen and starts reading its events.
// The reader goroutine exits when the screen is finalised.
func NewScreen(screen tcell.Screen) *Screen {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()
	return newScreen(screen, events)
}

func newScreen(screen tcell.Screen, events <-chan tcell.Event) *Screen {
	w, h := screen.Size()
	return &Screen{
		screen:  screen,
		camera:  NewCamera(w, h),
		theme:   DefaultTheme,
		events:  events,
		text:    make(map[ui.ElementID]string),
		visible: make(map[ui.ElementID]bool),
		enabled: make(map[rune]bool),
	}
}

// SetText implements ui.Surface.
func (s *Screen) SetText(id ui.ElementID, text string) { s.text[id] = text }

// SetVisible implements ui.Surface.
func (s *Screen) SetVisible(id ui.ElementID, visible bool) { s.visible[id] = visible }

// CreateLetters implements ui.Surface.
func (s *Screen) CreateLetters(letters []rune) {
	s.letters = append(s.letters[:0], letters...)
	for _, l := range letters {
		s.enabled[l] = true
	}
}

// SetLetterEnabled implements ui.Surface.
func (s *Screen) SetLetterEnabled(letter rune, enabled bool) { s.enabled[letter] = enabled }

// DrawFrame renders the board and any open notice, then shows the result.
func (s *Screen) DrawFrame() {
	s.screen.Clear()
	w, h := s.screen.Size()
	s.camera.Resize(w, h)
	s.hits = s.hits[:0]

	s.drawHeader()
	s.drawGallows()
	s.drawWord()
	s.drawLetters()
	s.drawHUD()
	if s.notice != "" {
		s.drawNotice(s.notice)
	}
	s.screen.Show()
}

func (s *Screen) drawHeader() {
	s.drawText(2, rowTitle, "H A N G M A N", s.theme.Title)
	score := s.text[ui.ScoreID]
	s.drawText(BoardWidth-2-runewidth.StringWidth(score), rowTitle, score, s.theme.Score)
}

func (s *Screen) drawGallows() {
	ox, oy := BoardWidth/2-4, rowGallows
	for dy, line := range gallowsFrame {
		s.drawText(ox, oy+dy, line, s.theme.Gallows)
	}
	for i, id := range ui.StageIDs {
		if !s.visible[id] {
			continue
		}
		for _, p := range figureParts[i] {
			s.putRune(ox+p.X, oy+p.Y, p.Glyph, s.theme.Figure)
		}
	}
}

func (s *Screen) drawWord() {
	s.drawCentered(rowWord, s.text[ui.WordID], s.theme.Word)

	shown := 0
	for _, id := range ui.StageIDs {
		if s.visible[id] {
			shown++
		}
	}
	if shown > 0 {
		s.drawCentered(rowMisses, missesText(shown, len(ui.StageIDs)), s.theme.Misses)
	}
}

func (s *Screen) drawLetters() {
	rowW := lettersPerRow*letterStride - 1
	x0 := (BoardWidth - rowW) / 2
	for i, l := range s.letters {
		x := x0 + (i%lettersPerRow)*letterStride
		y := rowLetters + (i/lettersPerRow)*2
		style := s.theme.Spent
		if s.enabled[l] {
			style = s.theme.Letter
			s.hits = append(s.hits, hitbox{x, x + 3, y, Input{Action: ActionGuess, Letter: l}})
		}
		s.drawText(x, y, "["+string(l)+"]", style)
	}
}

func (s *Screen) drawCentered(y int, text string, style tcell.Style) {
	x := (BoardWidth - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	s.drawText(x, y, text, style)
}

// drawText writes text at board (x, y), advancing by each rune's display
// width. Cells that fall off the screen are skipped.
func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.putRune(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
}

func (s *Screen) putRune(x, y int, r rune, style tcell.Style) {
	sx, sy, ok := s.camera.BoardToScreen(x, y)
	if !ok {
		return
	}
	s.screen.SetContent(sx, sy, r, nil, style)
}

// hitTest returns the input for a click at screen (sx, sy).
func (s *Screen) hitTest(sx, sy int) Input {
	bx, by := s.camera.ScreenToBoard(sx, sy)
	for _, h := range s.hits {
		if by == h.y && bx >= h.x0 && bx < h.x1 {
			return h.input
		}
	}
	return Input{}
}
