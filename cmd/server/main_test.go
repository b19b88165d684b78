package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"hangman/internal/config"
	"hangman/internal/words"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテストです", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name", "🎮Player🎮Na"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
		{"invalid utf-8 dropped", "ab\xffcd", "abcd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
			if len(got) > maxNameBytes {
				t.Errorf("sanitizeName(%q) is %d bytes; limit %d", tc.input, len(got), maxNameBytes)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
	if !allowedTerms[defaultTerm] {
		t.Errorf("default term %q must itself be allowed", defaultTerm)
	}
}

func TestHubSlots(t *testing.T) {
	h := newHub(config.Server{MaxSessions: 2}, words.Default(), slog.Default())

	r1, ok1 := h.acquire()
	r2, ok2 := h.acquire()
	if !ok1 || !ok2 {
		t.Fatal("expected two free slots")
	}
	if _, ok := h.acquire(); ok {
		t.Fatal("third session admitted past the limit")
	}
	r1()
	r3, ok := h.acquire()
	if !ok {
		t.Fatal("slot not returned on release")
	}
	r2()
	r3()
}

func TestLoadOrCreateHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	first, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not persisted: %v", err)
	}
	second, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("reloaded host key differs from the generated one")
	}
	if !bytes.Contains(logs.Bytes(), []byte("loaded host key")) {
		t.Errorf("expected load to be logged; got %q", logs.String())
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	signer, err := loadOrCreateHostKey(path, slog.Default())
	if err != nil || signer == nil {
		t.Fatalf("loadOrCreateHostKey = %v, %v", signer, err)
	}
}
