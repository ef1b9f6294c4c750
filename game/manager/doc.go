// Package manager holds the pieces that drive one game: collision
// classification, apple placement, and the state manager that composes them
// into the fixed-interval tick.
//
// Usage:
//
//	g := grid.Empty(25, 25)
//	s := entity.New(types.Point{X: 12, Y: 12}, types.Right)
//	sm := manager.NewStateManager(g, s, types.Right, foodMgr, store, sessionID, 120*time.Millisecond)
//
//	sm.TogglePause() // start
//	for each frame {
//		sm.Advance(time.Now())
//		draw(sm.DrawableGrid())
//	}
package manager
