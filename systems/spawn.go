package systems

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

// SpawnSegment creates one body segment entity at the given cell.
func SpawnSegment(world *engine.World, pos component.PositionComponent) core.Entity {
	eb := world.NewEntity()
	eb = engine.With(eb, world.Segments, component.SnakeSegmentComponent{})
	eb = engine.With(eb, world.Sizes, component.Square(parameter.SizeSegment))
	eb = engine.WithPosition(eb, world.Positions, pos)
	return eb.Build()
}

// SpawnSnake creates the default 2-segment chain (head plus one body segment
// directly behind it) at the configured spawn cell and direction, and
// replaces the game state's chain wholesale. Called at startup and by the
// game-over reset.
func SpawnSnake(world *engine.World) {
	cfg := world.Resource.Config

	eb := world.NewEntity()
	eb = engine.With(eb, world.Heads, component.SnakeHeadComponent{Direction: cfg.SpawnDirection})
	eb = engine.With(eb, world.Segments, component.SnakeSegmentComponent{})
	eb = engine.With(eb, world.Sizes, component.Square(parameter.SizeHead))
	eb = engine.WithPosition(eb, world.Positions, cfg.SpawnHead)
	head := eb.Build()

	tailPos := grid.WrapStep(cfg.SpawnHead, cfg.SpawnDirection.Opposite(), cfg.ArenaWidth, cfg.ArenaHeight)
	tail := SpawnSegment(world, tailPos)

	world.Resource.Game.State.ReplaceChain([]core.Entity{head, tail})
}
