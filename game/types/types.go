package types

// Point is a grid coordinate. X is the column and Y is the row; Y grows
// downward to match screen space.
type Point struct {
	X, Y int
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector returns the unit step for the direction.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Marker is the content of a single grid cell.
type Marker int

const (
	Empty Marker = iota
	SnakeBody
	Apple
)

func (m Marker) String() string {
	switch m {
	case Empty:
		return "empty"
	case SnakeBody:
		return "snake"
	case Apple:
		return "apple"
	default:
		return "unknown"
	}
}
