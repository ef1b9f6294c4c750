package entity

import (
	"fmt"

	"gosnake/game/types"
)

// Snake is an ordered sequence of grid positions, head first. A snake is
// always at least two segments long; consecutive segments are grid-adjacent.
// Snakes are values: Move and Grow return new snakes and leave the receiver
// untouched, so the renderer can keep drawing the previous snapshot while a
// tick is in flight.
type Snake struct {
	body []types.Point
}

// New returns a two-segment snake with its head at start, oriented so that
// an immediate move in dir is valid.
func New(start types.Point, dir types.Direction) Snake {
	v := dir.Vector()
	return Snake{body: []types.Point{
		start,
		{X: start.X - v.X, Y: start.Y - v.Y},
	}}
}

// FromBody builds a snake from an explicit segment list, head first.
// Panics if fewer than two segments are given.
func FromBody(body []types.Point) Snake {
	if len(body) < 2 {
		panic(fmt.Sprintf("entity: snake needs at least 2 segments, got %d", len(body)))
	}
	b := make([]types.Point, len(body))
	copy(b, body)
	return Snake{body: b}
}

// Step translates p by exactly one cell in dir.
func Step(p types.Point, dir types.Direction) types.Point {
	v := dir.Vector()
	return types.Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (s Snake) Head() types.Point { return s.body[0] }
func (s Snake) Tail() types.Point { return s.body[len(s.body)-1] }
func (s Snake) Len() int          { return len(s.body) }

// Body returns a copy of the segment list, head first.
func (s Snake) Body() []types.Point {
	b := make([]types.Point, len(s.body))
	copy(b, s.body)
	return b
}

// Occupies reports whether any segment sits on p.
func (s Snake) Occupies(p types.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Move advances the snake one cell in dir: the new head is prepended and the
// tail dropped, keeping the length unchanged. A move whose new head would
// land on the segment directly behind the head (the neck) is rejected and
// returns the snake unchanged with ok=false.
func (s Snake) Move(dir types.Direction) (Snake, bool) {
	newHead := Step(s.Head(), dir)
	if newHead == s.body[1] {
		return s, false
	}
	body := make([]types.Point, len(s.body))
	body[0] = newHead
	copy(body[1:], s.body[:len(s.body)-1])
	return Snake{body: body}, true
}

// Grow advances the head one cell in dir without dropping the tail, so the
// length increases by one. Growth only ever follows a committed move, so no
// backtrack check applies here.
func (s Snake) Grow(dir types.Direction) Snake {
	newHead := Step(s.Head(), dir)
	body := make([]types.Point, len(s.body)+1)
	body[0] = newHead
	copy(body[1:], s.body)
	return Snake{body: body}
}
