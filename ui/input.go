package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/game/manager"
	"gosnake/game/types"
)

// Poll maps raw raylib events onto the state manager's input surface.
// Arrow keys and WASD steer; space, P or a mouse click toggle pause.
// Direction requests are validated by the state manager and take effect on
// the next tick.
func Poll(sm *manager.StateManager) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		sm.RequestDirection(types.Up)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		sm.RequestDirection(types.Down)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		sm.RequestDirection(types.Left)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		sm.RequestDirection(types.Right)
	}

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) ||
		rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		sm.TogglePause()
	}
}
