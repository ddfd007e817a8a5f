package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/ball-arena/arena"
	"github.com/lixenwraith/ball-arena/audio"
	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/record"
	"github.com/lixenwraith/ball-arena/render"
)

const appName = "ball_arena"

var (
	configFlag = flag.String("config", "", "YAML match configuration")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 keeps the configured seed")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	tickFlag   = flag.Duration("tick", parameter.GameUpdateInterval, "Simulation tick interval")
	aiFlag     = flag.Bool("ai-allies", false, "Let the computer steer the allied paddle")
	debugFlag  = flag.Bool("debug", false, "Write the game journal to logs/")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configFlag, *seedFlag, *aiFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ball-arena: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "ball-arena: stdin and stdout must be a terminal")
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	career := record.Open(appName)

	audioCfg := audio.LoadConfig()
	if *muteFlag || career.Career().Muted {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	game, err := arena.New(cfg, arena.WithLogger(log.Default()), arena.WithAudio(sound))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "ball-arena: %v\n", err)
		os.Exit(1)
	}

	run(screen, game, career)
}

// loadConfig applies command-line overrides over the file or defaults
func loadConfig(path string, seed uint64, aiAllies bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if aiAllies {
		cfg.Teams.AIAllies = true
	}
	return cfg, cfg.Validate()
}

// run drives simulation on the clock scheduler and redraws on the frame ticker until quit
func run(screen tcell.Screen, game *arena.Arena, career *record.Store) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := engine.NewClockScheduler(game, *tickFlag)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	renderer := render.NewTerminalRenderer(screen)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	var steer steering
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()
			case *tcell.EventKey:
				cmd, axis := decodeKey(ev.Key(), ev.Rune())
				switch cmd {
				case cmdQuit:
					return
				case cmdPause:
					game.TogglePause()
				case cmdReset:
					game.Reset()
				case cmdMute:
					if err := career.SetMuted(game.ToggleMute()); err != nil {
						log.Printf("record: %v", err)
					}
				case cmdMove:
					steer.press(axis, time.Now())
					game.SetInput(axis)
				}
			}

		case now := <-frameTicker.C:
			game.SetInput(steer.current(now))
			snap := game.Snapshot()
			if recorded, err := career.Observe(&snap); err != nil {
				log.Printf("record: %v", err)
			} else if recorded {
				c := career.Career()
				log.Printf("record: %d matches, allies %d enemies %d", c.Matches, c.AlliesWins, c.EnemiesWins)
			}
			renderer.RenderFrame(&snap)
		}
	}
}
