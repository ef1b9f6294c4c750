package config

import "time"

// All values are fixed at build time. The game takes no flags (the window is
// the whole surface), so anything tunable lives here.
const (
	WindowTitle = "Snake"

	// CellSize is the pixel size of one grid cell. The board dimensions are
	// derived from the window size minus the HUD bar.
	CellSize  = 30
	GridCols  = 25
	GridRows  = 25
	HUDHeight = 50

	WindowWidth  = GridCols * CellSize
	WindowHeight = GridRows*CellSize + HUDHeight

	// TargetFPS is the draw rate; the simulation advances at most once per
	// TickInterval regardless of how often the loop runs.
	TargetFPS    = 60
	TickInterval = 120 * time.Millisecond

	// ScoreFile holds the persisted high score and game history.
	ScoreFile = "data/scores.json"
)
