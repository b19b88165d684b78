// hangman-server serves the hangman board over SSH; every connection plays
// its own game with its own score. Build:
//
//	go build -o hangman-server ./cmd/server
//
// Usage:
//
//	./hangman-server [--port 2222] [--key server_host_key] [--max-sessions 32]
//
// Settings also come from HANGMAN_* environment variables or a .env file.
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"hangman/internal/config"
	"hangman/internal/words"

	gossh "github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fatal(fmt.Errorf("load .env: %w", err))
	}
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	flag.IntVar(&cfg.Port, "port", cfg.Port, "SSH server port")
	flag.StringVar(&cfg.HostKey, "key", cfg.HostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "Maximum concurrent players")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	signer, err := loadOrCreateHostKey(cfg.HostKey, logger)
	if err != nil {
		fatal(err)
	}

	h := newHub(cfg, words.Default(), logger)
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
		IdleTimeout: cfg.IdleTimeout,
	}

	logger.Info("hangman SSH server listening", "port", cfg.Port, "max_sessions", cfg.MaxSessions)
	logger.Info(fmt.Sprintf("connect with:  ssh -t -p %d localhost", cfg.Port))
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
		logger.Warn("host key unreadable, generating a new one", "path", path)
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "hangman server")
	if err != nil {
		logger.Warn("cannot encode host key", "error", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("cannot persist host key", "path", path, "error", err)
	}
	return signer, nil
}
