// Package ui connects a game.Engine to a rendering surface. It holds no game
// state of its own: every change comes back from the engine as a snapshot
// and is pushed to the Surface.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"hangman/internal/game"
)

// ErrUnknownControl is returned by Activate for a letter with no control.
var ErrUnknownControl = errors.New("no control for letter")

// ElementID names a piece of the board the surface knows how to draw.
type ElementID string

const (
	WordID  ElementID = "word"
	ScoreID ElementID = "score"
)

// StageIDs are the drawing parts in reveal order.
var StageIDs = func() [game.MaxWrong]ElementID {
	var ids [game.MaxWrong]ElementID
	for i, s := range game.Stages {
		ids[i] = ElementID("stage-" + string(s))
	}
	return ids
}()

// Surface is everything the presenter needs from a UI toolkit.
type Surface interface {
	SetText(id ElementID, text string)
	SetVisible(id ElementID, visible bool)
	CreateLetters(letters []rune)
	SetLetterEnabled(letter rune, enabled bool)
	// ShowNotice blocks until the user dismisses the message.
	ShowNotice(message string)
}

// QuitMessage is shown when the player asks to quit.
const QuitMessage = "Press Ctrl-C to close the game 🙂"

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger used for round events.
func WithLogger(l *slog.Logger) Option {
	return func(p *Presenter) { p.logger = l }
}

// WithRoundObserver registers a callback run for every finished round,
// before the end-of-round notice is shown.
func WithRoundObserver(fn func(game.RoundOverEvent)) Option {
	return func(p *Presenter) { p.onRoundOver = fn }
}

// Presenter drives the surface from engine results and routes input back.
type Presenter struct {
	engine      *game.Engine
	surface     Surface
	logger      *slog.Logger
	onRoundOver func(game.RoundOverEvent)
	handlers    map[rune]func()
}

// New creates a Presenter. Call Start before routing any input.
func New(engine *game.Engine, surface Surface, opts ...Option) *Presenter {
	p := &Presenter{
		engine:  engine,
		surface: surface,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Start builds the letter controls and their handlers, then opens the
// first round.
func (p *Presenter) Start() {
	p.surface.CreateLetters(game.Alphabet)
	p.handlers = make(map[rune]func(), len(game.Alphabet))
	for _, l := range game.Alphabet {
		p.handlers[l] = p.guessHandler(l)
	}
	p.NewGame()
}

func (p *Presenter) guessHandler(letter rune) func() {
	return func() { p.guess(letter) }
}

// Activate runs the handler bound to a letter control.
func (p *Presenter) Activate(letter rune) error {
	h, ok := p.handlers[letter]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownControl, letter)
	}
	h()
	return nil
}

// NewGame starts a round on a freshly picked word.
func (p *Presenter) NewGame() {
	p.renderAll(p.engine.StartRound())
	p.logger.Debug("round started", "length", len([]rune(p.engine.Round().Target())))
}

// Restart replays the current word from scratch.
func (p *Presenter) Restart() {
	p.renderAll(p.engine.ResetRound())
	p.logger.Debug("round restarted")
}

// Quit shows how to leave. Closing the program is up to the host.
func (p *Presenter) Quit() {
	p.surface.ShowNotice(QuitMessage)
}

func (p *Presenter) guess(letter rune) {
	res, err := p.engine.GuessLetter(letter)
	if err != nil {
		// Handlers exist only for Alphabet letters.
		panic(err)
	}
	if !res.Changed {
		return
	}
	p.surface.SetText(WordID, res.Masked)
	p.surface.SetLetterEnabled(letter, false)
	p.renderStages(res.Stages)
	p.renderScore(res.Score)

	if res.RoundOver != nil {
		p.finishRound(*res.RoundOver)
	}
}

// finishRound blocks on the notice; the next round only starts after the
// player has acknowledged it, so no guess can reach the next round early.
func (p *Presenter) finishRound(ev game.RoundOverEvent) {
	p.logger.Info("round over", "target", ev.Target, "won", ev.Won, "score", ev.Score.String())
	if p.onRoundOver != nil {
		p.onRoundOver(ev)
	}
	p.surface.ShowNotice(RoundOverMessage(ev))
	p.NewGame()
}

// RoundOverMessage is the text of the end-of-round notice.
func RoundOverMessage(ev game.RoundOverEvent) string {
	if ev.Won {
		return fmt.Sprintf("You won! Word: %s\nScore: %s\n(Starting a new round…)", ev.Target, ev.Score)
	}
	return fmt.Sprintf("You lost! Word was: %s\nScore: %s\n(Starting a new round…)", ev.Target, ev.Score)
}

// ScoreText formats the score line.
func ScoreText(s game.Score) string { return "Score: " + s.String() }

func (p *Presenter) renderAll(snap game.Snapshot) {
	p.surface.SetText(WordID, snap.Masked)
	p.renderScore(snap.Score)
	p.renderStages(snap.Stages)
	for _, l := range game.Alphabet {
		p.surface.SetLetterEnabled(l, snap.LetterEnabled(l))
	}
}

func (p *Presenter) renderScore(s game.Score) {
	p.surface.SetText(ScoreID, ScoreText(s))
}

func (p *Presenter) renderStages(n int) {
	for i, id := range StageIDs {
		p.surface.SetVisible(id, i < n)
	}
}
