package systems

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// SpawnerSystem drops one food entity on a uniformly random cell each food
// tick. The draw is over the whole arena; it does not reject occupied cells,
// so food can land on the snake or stack on existing food.
type SpawnerSystem struct {
	ctx *engine.GameContext
	rng *rand.Rand
}

// NewSpawnerSystem creates a new food spawner.
func NewSpawnerSystem(ctx *engine.GameContext) *SpawnerSystem {
	return &SpawnerSystem{
		ctx: ctx,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Priority returns the system's priority.
func (s *SpawnerSystem) Priority() int {
	return parameter.PrioritySpawner
}

// Update spawns one food at a random cell.
func (s *SpawnerSystem) Update(world *engine.World, dt time.Duration) {
	cfg := world.Resource.Config

	pos := component.PositionComponent{
		X: s.rng.Intn(cfg.ArenaWidth),
		Y: s.rng.Intn(cfg.ArenaHeight),
	}

	eb := world.NewEntity()
	eb = engine.With(eb, world.Foods, component.FoodComponent{})
	eb = engine.With(eb, world.Sizes, component.Square(parameter.SizeFood))
	eb = engine.WithPosition(eb, world.Positions, pos)
	food := eb.Build()

	s.ctx.Log.Debug("food spawned",
		zap.Uint64("entity", uint64(food)),
		zap.Int("x", pos.X),
		zap.Int("y", pos.Y),
	)
}
