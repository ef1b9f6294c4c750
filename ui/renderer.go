package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/config"
	"gosnake/game/manager"
	"gosnake/game/types"
)

const borderPadding = 2 // padding around the board inside the play area

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	boardWidth   int32
	boardHeight  int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) updateDimensions(cols, rows int) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Fit the board into the area below the HUD bar.
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - config.HUDHeight - borderPadding*2

	cellW := availableWidth / int32(cols)
	cellH := availableHeight / int32(rows)
	r.cellSize = min(cellW, cellH)

	r.boardWidth = r.cellSize * int32(cols)
	r.boardHeight = r.cellSize * int32(rows)
	r.offsetX = (r.screenWidth - r.boardWidth) / 2
	r.offsetY = config.HUDHeight + (r.screenHeight-config.HUDHeight-r.boardHeight)/2
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame: HUD, board, snake and apple, plus the paused or
// game-over overlay. It only reads snapshots from the state manager.
func (r *Renderer) Draw(sm *manager.StateManager) {
	g := sm.DrawableGrid()
	r.updateDimensions(g.Width(), g.Height())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawHUD(sm)

	// Board background and grid lines.
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.boardWidth+2, r.boardHeight+2, rl.DarkGray)
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	// Cells.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := types.Point{X: x, Y: y}
			switch g.Get(p) {
			case types.SnakeBody:
				rl.DrawRectangle(r.cellX(p), r.cellY(p), r.cellSize, r.cellSize, rl.Green)
			case types.Apple:
				rl.DrawRectangle(r.cellX(p), r.cellY(p), r.cellSize, r.cellSize, rl.Red)
			}
		}
	}

	// Brighter head with a direction indicator.
	body := sm.SnakeBody()
	if head := body[0]; g.Contains(head) {
		rl.DrawRectangle(r.cellX(head), r.cellY(head), r.cellSize, r.cellSize, rl.Lime)
		r.drawHeadIndicator(head, sm.Direction())
	}

	switch {
	case sm.Over():
		r.drawOverlay(fmt.Sprintf("GAME OVER - %d apples", sm.Score()), rl.Red)
	case !sm.Running():
		r.drawOverlay("PAUSED - press space", rl.Yellow)
	}

	rl.EndDrawing()
}

func (r *Renderer) cellX(p types.Point) int32 { return r.offsetX + int32(p.X)*r.cellSize }
func (r *Renderer) cellY(p types.Point) int32 { return r.offsetY + int32(p.Y)*r.cellSize }

func (r *Renderer) drawHUD(sm *manager.StateManager) {
	fontSize := int32(config.HUDHeight / 2)
	y := int32(config.HUDHeight-int(fontSize)) / 2

	rl.DrawText(fmt.Sprintf("Score: %d", sm.Score()), 10, y, fontSize, rl.White)

	best := "Best: -"
	if hs, ok := sm.HighScore(); ok {
		best = fmt.Sprintf("Best: %d", hs)
	}
	textWidth := rl.MeasureText(best, fontSize)
	rl.DrawText(best, r.screenWidth-textWidth-10, y, fontSize, rl.White)
}

// drawHeadIndicator draws a triangle on the head cell pointing along the
// current movement direction.
func (r *Renderer) drawHeadIndicator(head types.Point, dir types.Direction) {
	x := r.cellX(head)
	y := r.cellY(head)
	half := r.cellSize / 2

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Yellow)
	}
}

func (r *Renderer) drawOverlay(text string, color rl.Color) {
	fontSize := r.screenHeight / 20
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.boardWidth-textWidth)/2,
		r.offsetY+r.boardHeight/2-fontSize/2,
		fontSize, color)
}
