package game

// Player is one side of a two-player game.
type Player int8

const (
	NoPlayer Player = iota
	P1
	P2
)

func (p Player) Other() Player {
	switch p {
	case P1:
		return P2
	case P2:
		return P1
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case P1:
		return "P1"
	case P2:
		return "P2"
	}
	return "none"
}
