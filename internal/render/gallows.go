package render

// gallowsFrame is drawn on every frame, top-left at the gallows origin.
var gallowsFrame = []string{
	"  +---+",
	"  |   |",
	"      |",
	"      |",
	"      |",
	"      |",
	"=========",
}

// figurePart is one glyph of the hanged figure, relative to the gallows origin.
type figurePart struct {
	X, Y  int
	Glyph rune
}

// figureParts follows ui.StageIDs order: head, body, arms, legs.
var figureParts = [][]figurePart{
	{{2, 2, 'O'}},
	{{2, 3, '|'}},
	{{1, 3, '/'}},
	{{3, 3, '\\'}},
	{{1, 4, '/'}},
	{{3, 4, '\\'}},
}
