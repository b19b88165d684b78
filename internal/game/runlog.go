package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RoundLog records one finished round. Entries are history only; the score
// of a new session always starts at zero.
type RoundLog struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Player    string    `json:"player"`
	Target    string    `json:"target"`
	Won       bool      `json:"won"`
	Guesses   string    `json:"guesses"`
	Wrong     int       `json:"wrong"`
	Score     Score     `json:"score"`
}

// NewRoundLog builds the log entry for a round that has just ended.
func NewRoundLog(sessionID, player string, ev RoundOverEvent, r *Round) RoundLog {
	rl := RoundLog{
		Timestamp: time.Now().UTC(),
		SessionID: sessionID,
		Player:    player,
		Target:    ev.Target,
		Won:       ev.Won,
		Score:     ev.Score,
	}
	if r != nil {
		rl.Guesses = string(r.GuessedLetters())
		rl.Wrong = r.WrongCount()
	}
	return rl
}

// SaveRoundLog appends the round as a single JSON line to rounds.jsonl.
// Errors are logged but never interrupt play.
func SaveRoundLog(rl RoundLog, logger *slog.Logger) {
	dir, err := roundLogDir()
	if err != nil {
		logger.Warn("round log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("round log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "rounds.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("round log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("round log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("round log: write failed", "error", err)
	}
}

// roundLogDir follows the XDG Base Directory spec: $XDG_DATA_HOME/hangman,
// defaulting to ~/.local/share/hangman.
func roundLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hangman"), nil
}
