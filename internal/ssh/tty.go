// Package ssh adapts SSH sessions to tcell so every connected player gets
// a full-screen terminal of their own.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Fallback size for clients that report a zero-sized PTY.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// SessionTty implements tcell.Tty over an SSH channel. Reads are the
// client's keystrokes, writes are the rendered frames.
type SessionTty struct {
	ch     io.ReadWriteCloser
	winCh  <-chan gossh.Window
	mu     sync.Mutex
	window gossh.Window
	onSize func() // resize callback registered by tcell
}

// NewSessionTty wraps an SSH session (any gossh.Session will do) as a
// tcell Tty. pty holds the initial window size; winCh delivers later
// window-change requests.
func NewSessionTty(ch io.ReadWriteCloser, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		ch:     ch,
		window: pty.Window,
		winCh:  winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.ch.Write(b) }

// Close closes the SSH channel, which also ends the client's session.
func (t *SessionTty) Close() error { return t.ch.Close() }

// Start, Stop and Drain are no-ops: the channel is opened and torn down by
// the SSH server, and writes are not buffered here.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.window.Width, t.window.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	return tcell.WindowSize{Width: w, Height: h}, nil
}

// NotifyResize registers cb and starts draining window-change requests.
// The drain goroutine ends when the server closes winCh.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	first := t.onSize == nil
	t.onSize = cb
	t.mu.Unlock()
	if !first || t.winCh == nil {
		return
	}

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			fn := t.onSize
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}()
}
