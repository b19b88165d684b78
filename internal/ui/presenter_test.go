package ui

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"hangman/internal/game"
	"hangman/internal/words"
)

// ─── fake surface ─────────────────────────────────────────────────────────────

type fakeSurface struct {
	text     map[ElementID]string
	visible  map[ElementID]bool
	letters  []rune
	enabled  map[rune]bool
	notices  []string
	onNotice func(msg string)
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		text:    make(map[ElementID]string),
		visible: make(map[ElementID]bool),
		enabled: make(map[rune]bool),
	}
}

func (f *fakeSurface) SetText(id ElementID, text string)     { f.text[id] = text }
func (f *fakeSurface) SetVisible(id ElementID, visible bool) { f.visible[id] = visible }
func (f *fakeSurface) CreateLetters(letters []rune)          { f.letters = append([]rune(nil), letters...) }
func (f *fakeSurface) SetLetterEnabled(letter rune, on bool) { f.enabled[letter] = on }
func (f *fakeSurface) ShowNotice(msg string) {
	f.notices = append(f.notices, msg)
	if f.onNotice != nil {
		f.onNotice(msg)
	}
}

func (f *fakeSurface) visibleStages() int {
	n := 0
	for _, id := range StageIDs {
		if f.visible[id] {
			n++
		}
	}
	return n
}

func newTestPresenter(t *testing.T, ws ...string) (*Presenter, *game.Engine, *fakeSurface) {
	t.Helper()
	e := game.NewEngine(words.MustNew(ws...), rand.New(rand.NewSource(42)))
	s := newFakeSurface()
	p := New(e, s)
	p.Start()
	return p, e, s
}

func activate(t *testing.T, p *Presenter, letters string) {
	t.Helper()
	for _, l := range letters {
		if err := p.Activate(l); err != nil {
			t.Fatalf("Activate(%q): %v", l, err)
		}
	}
}

// ─── tests ────────────────────────────────────────────────────────────────────

func TestStartRendersFreshBoard(t *testing.T) {
	_, _, s := newTestPresenter(t, "cat")
	if len(s.letters) != 26 {
		t.Fatalf("created %d letter controls; want 26", len(s.letters))
	}
	if s.text[WordID] != "_ _ _" {
		t.Errorf("word = %q; want %q", s.text[WordID], "_ _ _")
	}
	if s.text[ScoreID] != "Score: 0/0" {
		t.Errorf("score = %q; want %q", s.text[ScoreID], "Score: 0/0")
	}
	if n := s.visibleStages(); n != 0 {
		t.Errorf("%d stages visible; want 0", n)
	}
	for _, l := range game.Alphabet {
		if !s.enabled[l] {
			t.Errorf("letter %q not enabled", l)
		}
	}
}

func TestGuessFlow(t *testing.T) {
	p, _, s := newTestPresenter(t, "dog")

	activate(t, p, "O")
	if s.text[WordID] != "_ O _" {
		t.Errorf("word = %q; want %q", s.text[WordID], "_ O _")
	}
	if s.enabled['O'] {
		t.Error("guessed letter O still enabled")
	}

	activate(t, p, "XZ")
	if n := s.visibleStages(); n != 2 {
		t.Errorf("%d stages visible; want 2", n)
	}
	if !s.visible[StageIDs[0]] || !s.visible[StageIDs[1]] || s.visible[StageIDs[2]] {
		t.Error("stages must be revealed in order")
	}
	if len(s.notices) != 0 {
		t.Errorf("unexpected notices: %q", s.notices)
	}
}

func TestRoundOverNoticeThenNewRound(t *testing.T) {
	p, e, s := newTestPresenter(t, "cat")

	var observed []game.RoundOverEvent
	p.onRoundOver = func(ev game.RoundOverEvent) { observed = append(observed, ev) }

	// While the notice is up, the finished round must still be in place.
	s.onNotice = func(msg string) {
		if !e.Round().IsOver() {
			t.Error("next round started before the notice was dismissed")
		}
		if s.text[ScoreID] != "Score: 1/1" {
			t.Errorf("score text during notice = %q", s.text[ScoreID])
		}
	}

	activate(t, p, "CAT")

	if len(s.notices) != 1 {
		t.Fatalf("got %d notices; want 1", len(s.notices))
	}
	if !strings.HasPrefix(s.notices[0], "You won! Word: CAT") {
		t.Errorf("notice = %q", s.notices[0])
	}
	if len(observed) != 1 || !observed[0].Won {
		t.Errorf("observer saw %+v", observed)
	}
	// After dismissal a fresh round is running and the board is reset.
	if e.Round().IsOver() {
		t.Error("expected a new round after the notice")
	}
	if s.text[WordID] != "_ _ _" {
		t.Errorf("word = %q after new round", s.text[WordID])
	}
	for _, l := range "CAT" {
		if !s.enabled[l] {
			t.Errorf("letter %q not re-enabled", l)
		}
	}
}

func TestLossNotice(t *testing.T) {
	p, _, s := newTestPresenter(t, "dog")
	activate(t, p, "QXZVJK")
	if len(s.notices) != 1 {
		t.Fatalf("got %d notices; want 1", len(s.notices))
	}
	want := "You lost! Word was: DOG\nScore: 0/1\n(Starting a new round…)"
	if s.notices[0] != want {
		t.Errorf("notice = %q; want %q", s.notices[0], want)
	}
	if s.text[ScoreID] != "Score: 0/1" {
		t.Errorf("score = %q", s.text[ScoreID])
	}
	if n := s.visibleStages(); n != 0 {
		t.Errorf("%d stages visible after new round; want 0", n)
	}
}

func TestRepeatedActivateIsIgnored(t *testing.T) {
	p, e, s := newTestPresenter(t, "dog")
	activate(t, p, "QQQ")
	if e.Round().WrongCount() != 1 {
		t.Errorf("wrong count = %d; want 1", e.Round().WrongCount())
	}
	if n := s.visibleStages(); n != 1 {
		t.Errorf("%d stages visible; want 1", n)
	}
}

func TestRestartKeepsWord(t *testing.T) {
	p, e, s := newTestPresenter(t, words.Default().Words()...)
	target := e.Round().Target()
	activate(t, p, "QZ")
	p.Restart()
	if e.Round().Target() != target {
		t.Errorf("target changed on restart: %q -> %q", target, e.Round().Target())
	}
	if n := s.visibleStages(); n != 0 {
		t.Errorf("%d stages visible after restart", n)
	}
	if !s.enabled['Q'] || !s.enabled['Z'] {
		t.Error("letters not re-enabled after restart")
	}
}

func TestNewGameResetsBoard(t *testing.T) {
	p, e, s := newTestPresenter(t, "dog")
	activate(t, p, "QD")
	p.NewGame()
	if len(e.Round().GuessedLetters()) != 0 {
		t.Error("new game kept guesses")
	}
	if s.text[WordID] != "_ _ _" || !s.enabled['D'] {
		t.Errorf("board not reset: word=%q", s.text[WordID])
	}
}

func TestQuitShowsNotice(t *testing.T) {
	p, e, s := newTestPresenter(t, "dog")
	activate(t, p, "D")
	p.Quit()
	if len(s.notices) != 1 || s.notices[0] != QuitMessage {
		t.Errorf("notices = %q", s.notices)
	}
	if e.Round().WrongCount() != 0 || !e.Round().Guessed('D') {
		t.Error("quit must not touch the round")
	}
}

func TestActivateUnknownControl(t *testing.T) {
	p, _, _ := newTestPresenter(t, "dog")
	for _, l := range []rune{'a', '1', ' '} {
		if err := p.Activate(l); !errors.Is(err, ErrUnknownControl) {
			t.Errorf("Activate(%q) error = %v; want ErrUnknownControl", l, err)
		}
	}
}

func TestStageIDsUnique(t *testing.T) {
	seen := make(map[ElementID]bool)
	for _, id := range StageIDs {
		if seen[id] || id == WordID || id == ScoreID {
			t.Errorf("stage id %q collides", id)
		}
		seen[id] = true
	}
}
