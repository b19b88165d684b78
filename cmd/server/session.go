package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"hangman/internal/config"
	"hangman/internal/game"
	"hangman/internal/render"
	internalssh "hangman/internal/ssh"
	"hangman/internal/ui"
	"hangman/internal/words"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
)

// maxNameBytes caps the SSH user name used in logs and the round log.
const maxNameBytes = 16

// defaultTerm is used when the client's TERM is missing or not allowed.
const defaultTerm = "xterm-256color"

// allowedTerms lists the terminal types we hand to terminfo. Anything else
// falls back to defaultTerm, so a client cannot pick an arbitrary name.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu protects os.Setenv("TERM") around screen creation; terminfo
// lookup reads the process environment.
var termMu sync.Mutex

// hub hands out session slots and builds one game per connection.
type hub struct {
	cfg    config.Server
	words  words.List
	logger *slog.Logger
	slots  chan struct{}
}

func newHub(cfg config.Server, list words.List, logger *slog.Logger) *hub {
	return &hub{
		cfg:    cfg,
		words:  list,
		logger: logger,
		slots:  make(chan struct{}, cfg.MaxSessions),
	}
}

// acquire takes a session slot without blocking. The returned release
// function must be called exactly once when ok is true.
func (h *hub) acquire() (release func(), ok bool) {
	select {
	case h.slots <- struct{}{}:
		return func() { <-h.slots }, true
	default:
		return nil, false
	}
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *hub) handleSession(s gossh.Session) {
	release, ok := h.acquire()
	if !ok {
		fmt.Fprintln(s, "The hangman server is full, try again in a minute.")
		return
	}
	defer release()

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	id := uuid.NewString()
	name := sanitizeName(s.User())
	if name == "" {
		name = "player"
	}
	log := h.logger.With("session", id, "player", name, "remote", s.RemoteAddr().String())

	term := pty.Term
	if !allowedTerms[term] {
		log.Debug("terminal type not allowed, using default", "term", term)
		term = defaultTerm
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup failed", "term", term, "error", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		log.Warn("screen init failed", "error", err)
		return
	}
	screen.EnableMouse()

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()
	// A dropped connection finalises the screen, which closes the event
	// stream and ends the board's loop.
	go func() {
		<-s.Context().Done()
		fini()
	}()

	engine := game.NewEngine(h.words, rand.New(rand.NewSource(time.Now().UnixNano())))
	board := render.NewScreen(screen)
	opts := []ui.Option{ui.WithLogger(log)}
	if h.cfg.RoundLog {
		opts = append(opts, ui.WithRoundObserver(func(ev game.RoundOverEvent) {
			game.SaveRoundLog(game.NewRoundLog(id, name, ev, engine.Round()), log)
		}))
	}

	log.Info("session started", "term", term)
	start := time.Now()
	if err := board.Run(ui.New(engine, board, opts...)); err != nil {
		log.Error("session aborted", "error", err)
		return
	}
	won, played := engine.CurrentScore()
	log.Info("session ended", "won", won, "played", played, "duration", time.Since(start).Round(time.Second))
}

// sanitizeName drops control characters (escape sequences included) and
// truncates to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
