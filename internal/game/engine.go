// Package game implements the hangman rules: picking words, applying
// guesses, detecting the end of a round and keeping the session score.
// It has no UI dependency; front ends drive it through Engine.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"hangman/internal/words"
)

// ErrInvalidLetter is returned by GuessLetter for anything other than a
// single upper-case letter A-Z. Callers only ever offer those 26 letters,
// so seeing it means a bug in the caller.
var ErrInvalidLetter = errors.New("invalid letter")

// Score counts completed rounds for one engine. Won never exceeds Played.
type Score struct {
	Won    int `json:"won"`
	Played int `json:"played"`
}

func (s Score) String() string { return fmt.Sprintf("%d/%d", s.Won, s.Played) }

// Snapshot is a copy of everything a front end needs to draw the board.
type Snapshot struct {
	Masked     string
	Guessed    []rune // alphabetical
	WrongCount int
	Stages     int // number of revealed stages
	State      RoundState
	Score      Score
}

// LetterEnabled reports whether the letter can still be offered as a guess.
func (s Snapshot) LetterEnabled(letter rune) bool {
	for _, g := range s.Guessed {
		if g == letter {
			return false
		}
	}
	return true
}

// RoundOverEvent is produced exactly once per round, by the guess that ends it.
type RoundOverEvent struct {
	Target string
	Won    bool
	Score  Score
}

// GuessResult describes the effect of one GuessLetter call.
type GuessResult struct {
	Snapshot
	Letter  rune
	Correct bool
	// Changed is false when the guess was absorbed as a no-op
	// (repeated letter, round already over, or no round started).
	Changed   bool
	RoundOver *RoundOverEvent
}

// Engine owns the active round and the score. It is not safe for
// concurrent use; each player gets their own Engine driven from a single
// event loop.
type Engine struct {
	words words.List
	rng   *rand.Rand
	round *Round
	score Score
}

// NewEngine creates an Engine drawing from list. No round is started yet.
func NewEngine(list words.List, rng *rand.Rand) *Engine {
	if list.Len() == 0 {
		panic(words.ErrEmpty)
	}
	return &Engine{words: list, rng: rng}
}

// StartRound picks a new target uniformly at random (repeats allowed) and
// discards the previous round.
func (e *Engine) StartRound() Snapshot {
	target := e.words.At(e.rng.Intn(e.words.Len()))
	e.round = newRound(target)
	return e.Snapshot()
}

// ResetRound replays the current target from scratch. The score and the
// random source are untouched. With no round yet it starts one.
func (e *Engine) ResetRound() Snapshot {
	if e.round == nil {
		return e.StartRound()
	}
	e.round = newRound(e.round.target)
	return e.Snapshot()
}

// GuessLetter applies one guess to the current round.
func (e *Engine) GuessLetter(letter rune) (GuessResult, error) {
	if letter < 'A' || letter > 'Z' {
		return GuessResult{}, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	r := e.round
	if r == nil || r.IsOver() || r.Guessed(letter) {
		return GuessResult{Snapshot: e.Snapshot(), Letter: letter}, nil
	}

	correct := r.guess(letter)
	res := GuessResult{Letter: letter, Correct: correct, Changed: true}
	if r.IsOver() {
		e.score.Played++
		if r.IsWon() {
			e.score.Won++
		}
		res.RoundOver = &RoundOverEvent{
			Target: r.target,
			Won:    r.IsWon(),
			Score:  e.score,
		}
	}
	res.Snapshot = e.Snapshot()
	return res, nil
}

// MaskedDisplay returns the current target with unguessed positions blanked.
// It is empty before the first round.
func (e *Engine) MaskedDisplay() string {
	if e.round == nil {
		return ""
	}
	return e.round.MaskedDisplay()
}

// CurrentScore returns rounds won and rounds played.
func (e *Engine) CurrentScore() (won, played int) { return e.score.Won, e.score.Played }

// Round returns the active round, or nil before StartRound.
func (e *Engine) Round() *Round { return e.round }

// Snapshot captures the board state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{Score: e.score}
	if e.round == nil {
		return s
	}
	s.Masked = e.round.MaskedDisplay()
	s.Guessed = e.round.GuessedLetters()
	s.WrongCount = e.round.wrong
	s.Stages = RevealedStages(e.round.wrong)
	s.State = e.round.state
	return s
}
