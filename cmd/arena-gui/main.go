package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ball-arena/arena"
	"github.com/lixenwraith/ball-arena/audio"
	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/record"
)

const (
	screenWidth  = 720
	screenHeight = 760
)

var (
	configFlag = flag.String("config", "", "YAML match configuration")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 keeps the configured seed")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	career := record.Open("ball_arena")

	audioCfg := audio.LoadConfig()
	if *muteFlag || career.Career().Muted {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	a, err := arena.New(cfg, arena.WithAudio(sound))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Ball Arena")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(newGame(a, career)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
