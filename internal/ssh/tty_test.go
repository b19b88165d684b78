package ssh

import (
	"bytes"
	"io"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

type fakeChannel struct {
	in     *bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func (c *fakeChannel) Read(b []byte) (int, error)  { return c.in.Read(b) }
func (c *fakeChannel) Write(b []byte) (int, error) { return c.out.Write(b) }
func (c *fakeChannel) Close() error                { c.closed = true; return nil }

var _ io.ReadWriteCloser = (*fakeChannel)(nil)

func TestSessionTtyReadWriteClose(t *testing.T) {
	ch := &fakeChannel{in: bytes.NewBufferString("abc")}
	tty := NewSessionTty(ch, gossh.Pty{}, nil)

	buf := make([]byte, 8)
	n, err := tty.Read(buf)
	if err != nil || string(buf[:n]) != "abc" {
		t.Errorf("Read = %q, %v", buf[:n], err)
	}
	if _, err := tty.Write([]byte("frame")); err != nil || ch.out.String() != "frame" {
		t.Errorf("Write wrote %q, %v", ch.out.String(), err)
	}
	if err := tty.Close(); err != nil || !ch.closed {
		t.Errorf("Close: closed=%v err=%v", ch.closed, err)
	}
}

func TestSessionTtyWindowSize(t *testing.T) {
	cases := []struct {
		name  string
		win   gossh.Window
		wantW int
		wantH int
	}{
		{"reported size", gossh.Window{Width: 120, Height: 40}, 120, 40},
		{"zero size falls back", gossh.Window{}, defaultWidth, defaultHeight},
		{"zero height falls back", gossh.Window{Width: 100}, defaultWidth, defaultHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tty := NewSessionTty(&fakeChannel{in: new(bytes.Buffer)}, gossh.Pty{Window: tc.win}, nil)
			ws, err := tty.WindowSize()
			if err != nil {
				t.Fatalf("WindowSize: %v", err)
			}
			if ws.Width != tc.wantW || ws.Height != tc.wantH {
				t.Errorf("WindowSize = %dx%d; want %dx%d", ws.Width, ws.Height, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestSessionTtyNotifyResize(t *testing.T) {
	winCh := make(chan gossh.Window, 1)
	tty := NewSessionTty(&fakeChannel{in: new(bytes.Buffer)}, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })

	winCh <- gossh.Window{Width: 132, Height: 50}
	select {
	case <-resized:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not invoked")
	}
	ws, _ := tty.WindowSize()
	if ws.Width != 132 || ws.Height != 50 {
		t.Errorf("WindowSize after resize = %dx%d; want 132x50", ws.Width, ws.Height)
	}
	close(winCh)
}
