package render

import "github.com/gdamore/tcell/v2"

// Theme holds the styles used to draw the board. Letter buttons use
// distinct styles for the enabled and disabled state instead of hiding
// guessed letters, so the keyboard layout never shifts.
type Theme struct {
	Title   tcell.Style
	Score   tcell.Style
	Gallows tcell.Style // frame, always drawn
	Figure  tcell.Style // revealed stages
	Word    tcell.Style
	Letter  tcell.Style // enabled letter button
	Spent   tcell.Style // disabled letter button
	Control tcell.Style
	Hint    tcell.Style
	Border  tcell.Style
	Notice  tcell.Style
	Dismiss tcell.Style
	Misses  tcell.Style
}

// DefaultTheme is used by NewScreen.
var DefaultTheme = Theme{
	Title:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true),
	Score:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	Gallows: tcell.StyleDefault.Foreground(tcell.ColorGray),
	Figure:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	Word:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	Letter:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255)),
	Spent:   tcell.StyleDefault.Foreground(tcell.ColorDimGray),
	Control: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	Hint:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	Border:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	Notice:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	Dismiss: tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
	Misses:  tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
}
