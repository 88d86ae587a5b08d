package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/config"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/render"
	"github.com/lixenwraith/gridsnake/systems"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	colorMode := flag.String("color", "auto", "color mode: auto, 256, truecolor")
	startMuted := flag.Bool("mute", false, "start with sound muted")
	flag.Parse()

	// tcell reads these before screen creation
	switch *colorMode {
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	ctx := engine.NewGameContext(cfg.Resource(), log)

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Warn("audio unavailable", zap.Error(err))
	} else {
		ctx.SetAudioPlayer(player)
		defer player.Cleanup()
	}
	if *startMuted && !player.IsMuted() {
		player.ToggleMute()
	}

	scheduler := engine.NewTickScheduler(ctx.World, cfg.Timing.MoveInterval, cfg.Timing.FoodInterval)
	scheduler.AddMoveSystem(systems.NewMovementSystem(ctx))
	scheduler.AddMoveSystem(systems.NewEatingSystem(ctx))
	scheduler.AddFoodSystem(systems.NewSpawnerSystem(ctx))
	scheduler.RegisterHandler(systems.NewGrowthSystem(ctx))
	scheduler.RegisterHandler(systems.NewGameOverSystem(ctx))
	scheduler.RegisterHandler(systems.NewAudioSystem(ctx))

	inputSystem := systems.NewInputSystem(ctx)
	keys := input.NewKeyState()
	renderer := render.NewRenderer(screen)

	systems.SpawnSnake(ctx.World)
	log.Info("game started",
		zap.Int("arena_width", cfg.Arena.Width),
		zap.Int("arena_height", cfg.Arena.Height),
		zap.Duration("move_interval", cfg.Timing.MoveInterval),
		zap.Duration("food_interval", cfg.Timing.FoodInterval),
	)

	run(ctx, scheduler, inputSystem, keys, renderer, screen, player)
}

func run(ctx *engine.GameContext, scheduler *engine.TickScheduler, inputSystem *systems.InputSystem,
	keys *input.KeyState, renderer *render.Renderer, screen tcell.Screen, player *audio.Player) {

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					ctx.Log.Info("shutdown requested",
						zap.Int64("frames", ctx.FrameNumber.Load()),
						zap.Uint64("rounds", ctx.World.Resource.Game.State.Rounds()),
					)
					return
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
					muted := player.ToggleMute()
					ctx.Log.Debug("mute toggled", zap.Bool("muted", muted))
					continue
				}
				if dir, ok := input.DirectionFromKey(ev); ok {
					keys.Press(dir)
				}
			case *tcell.EventResize:
				renderer.HandleResize()
			}

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now

			inputSystem.Resolve(keys.TakeFrame())
			scheduler.Advance(elapsed)
			renderer.Draw(ctx.World)
			ctx.FrameNumber.Add(1)
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	// The terminal belongs to tcell, so logs go to a file only
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	return zapCfg.Build()
}
