package game

import (
	"sort"
	"strings"
)

// MaxWrong is the number of wrong guesses that loses a round.
const MaxWrong = 6

// Placeholder is shown for every letter of the target not yet guessed.
const Placeholder = '_'

// Alphabet lists the letters a player may guess, in button order.
var Alphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// RoundState tracks the per-round state machine.
type RoundState uint8

const (
	StateNotStarted RoundState = iota
	StateInProgress
	StateWon
	StateLost
)

// Over reports whether the state is terminal for its round.
func (s RoundState) Over() bool { return s == StateWon || s == StateLost }

func (s RoundState) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

// Round is one play of a single target word. Once over it is never reused;
// the engine replaces it with a fresh Round.
type Round struct {
	target  string
	guessed map[rune]bool
	wrong   int
	state   RoundState
}

func newRound(target string) *Round {
	return &Round{
		target:  target,
		guessed: make(map[rune]bool),
		state:   StateInProgress,
	}
}

// Target returns the word being guessed.
func (r *Round) Target() string { return r.target }

// Guessed reports whether letter has been tried this round.
func (r *Round) Guessed(letter rune) bool { return r.guessed[letter] }

// GuessedLetters returns the tried letters in alphabetical order.
func (r *Round) GuessedLetters() []rune {
	out := make([]rune, 0, len(r.guessed))
	for l := range r.guessed {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WrongCount returns the number of wrong guesses so far.
func (r *Round) WrongCount() int { return r.wrong }

// State returns the round's current state.
func (r *Round) State() RoundState { return r.state }

// IsOver reports whether the round has been won or lost.
func (r *Round) IsOver() bool { return r.state.Over() }

// IsWon reports whether the round ended with the word guessed.
func (r *Round) IsWon() bool { return r.state == StateWon }

// MaskedDisplay renders the target with unguessed positions blanked,
// one position per cell, separated by single spaces. Every character,
// letter or not, needs to be guessed before it is shown.
func (r *Round) MaskedDisplay() string {
	var b strings.Builder
	for i, c := range r.target {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r.guessed[c] {
			b.WriteRune(c)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// guess applies a new letter and returns whether it occurs in the target.
// The caller has already checked the letter is new and the round is live.
func (r *Round) guess(letter rune) bool {
	r.guessed[letter] = true
	hit := strings.ContainsRune(r.target, letter)
	if !hit {
		r.wrong++
	}
	switch {
	case r.wrong >= MaxWrong:
		r.state = StateLost
	case r.solved():
		r.state = StateWon
	}
	return hit
}

func (r *Round) solved() bool {
	for _, c := range r.target {
		if !r.guessed[c] {
			return false
		}
	}
	return true
}
