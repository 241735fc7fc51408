package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/mlange-42/ark-tools/app"

	"dodgetrainer/audio"
	"dodgetrainer/config"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/systems"
	"dodgetrainer/terminal"
	"dodgetrainer/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file (optional)")
	logFlag    = flag.String("log", "", "Log file path (overrides config)")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = derive from clock)")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDODGE TRAINER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		if err := cfg.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *logFlag != "" {
		cfg.Log.Path = *logFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The terminal owns stdout from here on; logs go to the rolling file
	if err := engine.InitLogger(cfg.Log.Path, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer engine.SyncLogger()

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	term.Start()
	defer term.Fini()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screenW, screenH := term.Size()
	keyUp, keyDown, keyLeft, keyRight := cfg.MoveRunes()

	shared := &engine.Shared{
		Arena:           engine.ArenaForScreen(screenW, screenH),
		ScreenW:         screenW,
		ScreenH:         screenH,
		Events:          engine.NewEventQueue(),
		Session:         engine.NewSession(),
		Rand:            vmath.NewFastRand(uint64(seed)),
		Aspect:          vmath.FromFloat(parameter.CellAspectFloat),
		PlayerSpeed:     vmath.FromFloat(cfg.Player.Speed),
		EnemySpeed:      vmath.FromFloat(cfg.Enemy.Speed),
		EnemySpread:     vmath.FromFloat(cfg.Enemy.Spread),
		HoldWindowTicks: holdTicks(time.Duration(cfg.Input.HoldWindow)),
		KeyUp:           keyUp,
		KeyDown:         keyDown,
		KeyLeft:         keyLeft,
		KeyRight:        keyRight,
		EnemyEnabled:    cfg.Enemy.Enabled,
	}

	shared.Session.Seed = seed

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		// Non-fatal, game can run without sound
		if err := sound.Initialize(); err != nil {
			engine.Log.Warnw("audio unavailable", "error", err)
		}
	}

	tool := app.New(1024).Seed(uint64(seed))
	tool.TPS = parameter.TicksPerSecond

	engine.SpawnPlayer(&tool.World, shared)

	tool.AddSystem(systems.NewInputSystem(shared, term.Events()))
	tool.AddSystem(systems.NewClockSystem(shared))
	tool.AddSystem(systems.NewAimSystem(shared))
	tool.AddSystem(systems.NewMovementSystem(shared))
	tool.AddSystem(systems.NewEnemyAISystem(shared))
	tool.AddSystem(systems.NewAmmoSystem(shared))
	tool.AddSystem(systems.NewFireSystem(shared))
	tool.AddSystem(systems.NewBulletSystem(shared))
	tool.AddSystem(systems.NewCollisionSystem(shared))
	tool.AddSystem(systems.NewRespawnSystem(shared))
	tool.AddSystem(systems.NewAudioSystem(shared, sound))
	tool.AddSystem(systems.NewSessionSystem(shared, cfg.Game.ReportPath))
	tool.AddSystem(systems.NewCullSystem())
	tool.AddSystem(systems.NewRenderSystem(shared, term))

	tool.Initialize()

	engine.Log.Infow("game started",
		"seed", seed,
		"arena", fmt.Sprintf("%dx%d", shared.Arena.Width, shared.Arena.Height),
		"enemy", cfg.Enemy.Enabled)

	ticker := time.NewTicker(time.Second / time.Duration(tool.TPS))
	defer ticker.Stop()

	for !shared.QuitRequested {
		<-ticker.C
		tool.Update()
	}

	tool.Finalize()

	// Restore the terminal before printing so the summary lands on the
	// normal screen, not the alternate one
	term.Fini()

	s := shared.Session
	fmt.Printf("session %s\n", s.ID)
	fmt.Printf("  time     %s\n", s.Duration().Round(time.Second))
	fmt.Printf("  bursts   %d\n", s.BurstsFired)
	fmt.Printf("  shots    %d (%.0f%% hit)\n", s.ShotsFired, s.Accuracy()*100)
	fmt.Printf("  taken    %d\n", s.HitsTaken)
	fmt.Printf("  downed   %d\n", s.EnemiesDestroyed)
}

// holdTicks converts the key hold window to logic ticks, rounding up so
// a window shorter than one tick still registers.
func holdTicks(d time.Duration) uint64 {
	tick := time.Second / parameter.TicksPerSecond
	n := (d + tick - 1) / tick
	if n < 1 {
		n = 1
	}
	return uint64(n)
}
