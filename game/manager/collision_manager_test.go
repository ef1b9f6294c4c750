package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gosnake/game/entity"
	"gosnake/game/grid"
	"gosnake/game/types"
)

func TestClassifyNone(t *testing.T) {
	cm := NewCollisionManager()
	g := grid.Empty(5, 5)
	s := entity.FromBody([]types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}})

	assert.Equal(t, CollisionNone, cm.Classify(s, g))
}

func TestClassifyWall(t *testing.T) {
	cm := NewCollisionManager()
	g := grid.Empty(5, 5)

	heads := []types.Point{
		{X: -1, Y: 2},
		{X: 5, Y: 2},
		{X: 2, Y: -1},
		{X: 2, Y: 5},
	}
	for _, head := range heads {
		s := entity.FromBody([]types.Point{head, {X: 2, Y: 2}})
		assert.Equal(t, CollisionWall, cm.Classify(s, g), "head %v", head)
	}
}

func TestClassifyWallRegardlessOfGridContents(t *testing.T) {
	// An out-of-bounds head is a wall hit no matter what the board holds;
	// there is no valid cell to inspect.
	cm := NewCollisionManager()
	g := grid.Empty(5, 5).WithMarker(types.Point{X: 0, Y: 0}, types.Apple)
	s := entity.FromBody([]types.Point{{X: -1, Y: 0}, {X: 0, Y: 0}})

	assert.Equal(t, CollisionWall, cm.Classify(s, g))
}

func TestClassifySelf(t *testing.T) {
	cm := NewCollisionManager()
	g := grid.Empty(5, 5)
	// Head has looped back onto the third segment.
	s := entity.FromBody([]types.Point{
		{X: 1, Y: 1},
		{X: 1, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: 1},
		{X: 1, Y: 1},
	})

	assert.Equal(t, CollisionSelf, cm.Classify(s, g))
}

func TestClassifySelfWinsOverApple(t *testing.T) {
	// Unreachable under the game's invariants, but the ordering is pinned:
	// a head on its own body classifies Self even if the cell holds an
	// apple.
	cm := NewCollisionManager()
	head := types.Point{X: 2, Y: 2}
	g := grid.Empty(5, 5).WithMarker(head, types.Apple)
	s := entity.FromBody([]types.Point{head, {X: 2, Y: 3}, head})

	assert.Equal(t, CollisionSelf, cm.Classify(s, g))
}

func TestClassifyApple(t *testing.T) {
	cm := NewCollisionManager()
	head := types.Point{X: 1, Y: 3}
	g := grid.Empty(5, 5).WithMarker(head, types.Apple)
	s := entity.FromBody([]types.Point{head, {X: 2, Y: 3}})

	assert.Equal(t, CollisionApple, cm.Classify(s, g))
}
