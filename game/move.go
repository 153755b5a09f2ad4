package game

// Action is a single agent move: one of the four cardinal directions or Stop.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// Directions lists every action in the order legal actions are generated.
var Directions = []Action{North, South, East, West, Stop}

var reverse = map[Action]Action{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Stop:  Stop,
}

// Reverse returns the opposite direction. Stop reverses to itself.
func Reverse(a Action) Action {
	if r, ok := reverse[a]; ok {
		return r
	}
	return Stop
}

// Vector returns the position offset the action applies.
func (a Action) Vector() Position {
	switch a {
	case North:
		return Position{X: 0, Y: 1}
	case South:
		return Position{X: 0, Y: -1}
	case East:
		return Position{X: 1, Y: 0}
	case West:
		return Position{X: -1, Y: 0}
	default:
		return Position{}
	}
}
