package manager

import (
	"errors"
	"time"

	"gosnake/game/entity"
	"gosnake/game/grid"
	"gosnake/game/score"
	"gosnake/game/types"
	"gosnake/pkg/log"
)

// StateManager owns the grid, the snake and the pause/running/game-over
// state machine, and executes the fixed-interval tick that advances them.
// All mutation happens inside Advance; input handlers only perform validated
// assignments that take effect on the next tick.
type StateManager struct {
	grid  grid.Grid
	snake entity.Snake

	collisionMgr *CollisionManager
	foodMgr      *FoodManager
	store        score.Store
	sessionID    string

	direction    types.Direction
	running      bool
	over         bool
	applesEaten  int
	lastTick     time.Time
	tickInterval time.Duration

	highScore      int
	highScoreKnown bool
}

// NewStateManager builds a paused game around the given board and snake.
// The stored high score is loaded once up front; a missing or corrupt score
// file leaves it unknown and the HUD shows a fallback.
func NewStateManager(g grid.Grid, s entity.Snake, dir types.Direction, foodMgr *FoodManager, store score.Store, sessionID string, tickInterval time.Duration) *StateManager {
	sm := &StateManager{
		grid:         g,
		snake:        s,
		collisionMgr: NewCollisionManager(),
		foodMgr:      foodMgr,
		store:        store,
		sessionID:    sessionID,
		direction:    dir,
		tickInterval: tickInterval,
	}
	sm.loadHighScore()
	return sm
}

// Advance runs one state tick if the game is running and the tick interval
// has elapsed since the previous tick. It is called every frame; the gate
// decouples the simulation rate from the draw rate.
func (sm *StateManager) Advance(now time.Time) {
	if !sm.running || sm.over {
		return
	}
	if now.Sub(sm.lastTick) < sm.tickInterval {
		return
	}
	sm.lastTick = now
	sm.tick(now)
}

// tick advances the snake, tops up the apple, and resolves the resulting
// collision. Growth applies to the pre-move body: eating an apple keeps the
// tail in place while the head advances onto the apple cell.
func (sm *StateManager) tick(now time.Time) {
	prev := sm.snake
	if moved, ok := prev.Move(sm.direction); ok {
		sm.snake = moved
	}

	sm.grid = sm.foodMgr.PlaceIfAbsent(sm.grid, sm.snake)

	switch sm.collisionMgr.Classify(sm.snake, sm.grid) {
	case CollisionApple:
		sm.grid = sm.grid.ClearMarker(types.Apple)
		sm.snake = prev.Grow(sm.direction)
		sm.applesEaten++
	case CollisionWall, CollisionSelf:
		sm.gameOver(now)
	case CollisionNone:
	}
}

// gameOver enters the terminal state and persists the result. Runs exactly
// once; sm.over gates Advance from ever ticking again.
func (sm *StateManager) gameOver(now time.Time) {
	sm.over = true
	sm.running = false
	log.Info("game over: %d apples eaten", sm.applesEaten)

	wrote, err := sm.store.CommitIfHigher(sm.applesEaten)
	if err != nil {
		log.Error("failed to commit high score: %v", err)
	} else if wrote {
		sm.highScore = sm.applesEaten
		sm.highScoreKnown = true
		log.Info("new high score: %d", sm.applesEaten)
	}

	if err := sm.store.AppendResult(score.Result{
		SessionID: sm.sessionID,
		Score:     sm.applesEaten,
		EndedAt:   now,
	}); err != nil {
		log.Error("failed to record game result: %v", err)
	}
}

// RequestDirection changes the movement direction for the next tick. The
// request is validated against the current body: a direction that would
// reverse the head into the neck is ignored and the current direction kept.
func (sm *StateManager) RequestDirection(dir types.Direction) {
	if sm.over {
		return
	}
	if _, ok := sm.snake.Move(dir); ok {
		sm.direction = dir
	}
}

// TogglePause flips between paused and running. Game over is terminal, so
// the toggle is unavailable there.
func (sm *StateManager) TogglePause() {
	if sm.over {
		return
	}
	sm.running = !sm.running
}

func (sm *StateManager) Running() bool              { return sm.running }
func (sm *StateManager) Over() bool                 { return sm.over }
func (sm *StateManager) Score() int                 { return sm.applesEaten }
func (sm *StateManager) Direction() types.Direction { return sm.direction }

// SnakeBody returns a copy of the snake's segments, head first.
func (sm *StateManager) SnakeBody() []types.Point {
	return sm.snake.Body()
}

// DrawableGrid returns a snapshot of the board with the snake overlaid as
// SnakeBody markers. A head that has just crossed a wall is outside the
// bounds and is skipped.
func (sm *StateManager) DrawableGrid() grid.Grid {
	g := sm.grid
	for _, seg := range sm.snake.Body() {
		if !g.Contains(seg) {
			continue
		}
		g = g.WithMarker(seg, types.SnakeBody)
	}
	return g
}

// HighScore returns the cached stored high score. ok is false when no score
// has ever been recorded or the score file could not be read.
func (sm *StateManager) HighScore() (int, bool) {
	return sm.highScore, sm.highScoreKnown
}

func (sm *StateManager) loadHighScore() {
	v, err := sm.store.ReadHighScore()
	switch {
	case err == nil:
		sm.highScore = v
		sm.highScoreKnown = true
	case errors.Is(err, score.ErrNotFound):
		log.Debug("no saved high score yet")
	default:
		log.Warn("could not read high score: %v", err)
	}
}
