package game

// Stage is one part of the gallows drawing revealed by a wrong guess.
type Stage string

// Stages is the fixed reveal order; a wrong count of n shows the first n.
var Stages = [MaxWrong]Stage{
	"head",
	"body",
	"left-arm",
	"right-arm",
	"left-leg",
	"right-leg",
}

// RevealedStages returns how many stages are visible for the given wrong
// count. It is derived state only; nothing tracks it separately.
func RevealedStages(wrong int) int {
	switch {
	case wrong < 0:
		return 0
	case wrong > len(Stages):
		return len(Stages)
	}
	return wrong
}
