package game

// Player marks a cell owner and identifies a mover. None doubles as the
// empty cell and the "no winner / draw" answer; it is never a mover.
type Player int

const (
	None Player = iota
	Human
	AI
)

// Opponent returns the other mover. None has no opponent and maps to itself.
func (p Player) Opponent() Player {
	switch p {
	case Human:
		return AI
	case AI:
		return Human
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Human:
		return "Human"
	case AI:
		return "AI"
	default:
		return "None"
	}
}
