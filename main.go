package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"hangman/internal/game"
	"hangman/internal/render"
	"hangman/internal/ui"
	"hangman/internal/words"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	engine := game.NewEngine(words.Default(), rand.New(rand.NewSource(time.Now().UnixNano())))
	board := render.NewScreen(screen)
	return board.Run(ui.New(engine, board))
}
