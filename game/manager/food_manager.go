package manager

import (
	"golang.org/x/exp/rand"

	"gosnake/game/entity"
	"gosnake/game/grid"
	"gosnake/game/types"
	"gosnake/pkg/log"
)

// FoodManager places the apple. The board holds at most one apple at a time;
// the four corners never hold one (they are too hard to reach against the
// walls).
type FoodManager struct {
	rng *rand.Rand
}

// NewFoodManager returns a food manager seeded with the given value.
// Tests pass a fixed seed for reproducible placement.
func NewFoodManager(seed uint64) *FoodManager {
	return &FoodManager{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// PlaceIfAbsent returns the grid with an apple added at a uniformly random
// free, non-corner cell, or the grid unchanged if it already holds an apple.
// When the snake has filled every eligible cell there is nowhere to place;
// the grid is returned unchanged and placement is retried next tick.
func (fm *FoodManager) PlaceIfAbsent(g grid.Grid, s entity.Snake) grid.Grid {
	if g.Count(types.Apple) > 0 {
		return g
	}

	corners := g.Corners()
	candidates := make([]types.Point, 0, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
	cell:
		for x := 0; x < g.Width(); x++ {
			p := types.Point{X: x, Y: y}
			if s.Occupies(p) {
				continue
			}
			for _, c := range corners {
				if p == c {
					continue cell
				}
			}
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		// Near-win condition: the snake covers every eligible cell.
		log.Debug("no free cell for apple, retrying next tick")
		return g
	}

	return g.WithMarker(candidates[fm.rng.Intn(len(candidates))], types.Apple)
}
