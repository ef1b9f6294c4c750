package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"gosnake/config"
	"gosnake/game/entity"
	"gosnake/game/grid"
	"gosnake/game/manager"
	"gosnake/game/score"
	"gosnake/game/types"
	"gosnake/pkg/log"
	"gosnake/ui"
)

func main() {
	sessionID := uuid.New().String()
	log.Info("starting session %s", sessionID)

	store := score.NewFileStore(config.ScoreFile)
	foodMgr := manager.NewFoodManager(uint64(time.Now().UnixNano()))

	g := grid.Empty(config.GridCols, config.GridRows)
	snake := entity.New(types.Point{X: config.GridCols / 2, Y: config.GridRows / 2}, types.Right)
	sm := manager.NewStateManager(g, snake, types.Right, foodMgr, store, sessionID, config.TickInterval)

	rl.InitWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	renderer := ui.NewRenderer()

	// Draw every frame; the state manager's interval gate decides which
	// frames also advance the simulation.
	for !rl.WindowShouldClose() {
		ui.Poll(sm)
		sm.Advance(time.Now())
		renderer.Draw(sm)
	}

	log.Info("session %s closed with score %d", sessionID, sm.Score())
}
