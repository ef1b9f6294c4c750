package manager

import (
	"gosnake/game/entity"
	"gosnake/game/grid"
	"gosnake/game/types"
)

// Collision classifies what the snake's head has run into after a move.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
	CollisionApple
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionApple:
		return "apple"
	default:
		return "unknown"
	}
}

// CollisionManager inspects a snake's head position against the board.
type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Classify returns exactly one classification for the snake's head.
//
// The wall check runs first: an out-of-bounds head has no valid grid cell to
// query. Self runs before Apple so that, were both ever to apply, the fatal
// outcome wins.
func (cm *CollisionManager) Classify(s entity.Snake, g grid.Grid) Collision {
	head := s.Head()
	if !g.Contains(head) {
		return CollisionWall
	}
	for _, seg := range s.Body()[1:] {
		if seg == head {
			return CollisionSelf
		}
	}
	if g.Get(head) == types.Apple {
		return CollisionApple
	}
	return CollisionNone
}
