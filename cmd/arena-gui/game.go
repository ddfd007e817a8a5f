package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/ball-arena/arena"
	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/record"
	"github.com/lixenwraith/ball-arena/render"
)

const (
	hudHeight  = 40
	viewMargin = 0.75
)

// game adapts an Arena to ebiten's fixed-rate Update/Draw loop
type game struct {
	arena  *arena.Arena
	career *record.Store
	snap   arena.Snapshot
	w, h   int
}

func newGame(a *arena.Arena, career *record.Store) *game {
	return &game{arena: a, career: career, w: screenWidth, h: screenHeight}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.arena.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.arena.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if err := g.career.SetMuted(g.arena.ToggleMute()); err != nil {
			log.Printf("record: %v", err)
		}
	}

	axis := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		axis--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		axis++
	}
	g.arena.SetInput(axis)

	g.arena.Tick(time.Second / time.Duration(ebiten.TPS()))
	g.snap = g.arena.Snapshot()
	if _, err := g.career.Observe(&g.snap); err != nil {
		log.Printf("record: %v", err)
	}
	return nil
}

// project maps a floor point to screen pixels; -Z is up
func (g *game) project(x, z float64) (float32, float32, float64) {
	span := g.snap.HalfExtent + viewMargin
	size := math.Min(float64(g.w), float64(g.h-hudHeight))
	scale := size / (2 * span)
	ox := (float64(g.w) - size) / 2
	oy := float64(hudHeight) + (float64(g.h-hudHeight)-size)/2
	return float32(ox + (x+span)*scale), float32(oy + (z+span)*scale), scale
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(render.RgbBackground.RGBA(1))
	if g.snap.HalfExtent <= 0 {
		return
	}

	half := g.snap.HalfExtent
	x0, y0, _ := g.project(-half, -half)
	x1, y1, _ := g.project(half, half)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, render.RgbFloorDot.RGBA(1), true)

	for pass := 0; pass < 2; pass++ {
		for i := range g.snap.Entities {
			v := &g.snap.Entities[i]
			// Balls last so they draw over goals
			if (v.Kind == core.KindBall) != (pass == 1) {
				continue
			}
			g.drawEntity(screen, v)
		}
	}

	g.drawHUD(screen)
}

func (g *game) drawEntity(screen *ebiten.Image, v *arena.EntityView) {
	if v.State == component.LifecycleRemoved || v.Alpha <= 0 {
		return
	}
	clr := render.EntityColor(v).RGBA(v.Alpha)
	cx, cy, scale := g.project(v.Position.X, v.Position.Z)

	switch v.Shape.Kind {
	case component.ShapeBox:
		w := float32(2 * v.Shape.HalfX * scale)
		h := float32(2 * v.Shape.HalfZ * scale)
		vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, clr, true)
	default:
		vector.DrawFilledCircle(screen, cx, cy, float32(v.Shape.Radius*scale), clr, true)
	}
}

func (g *game) drawHUD(screen *ebiten.Image) {
	s := &g.snap
	hud := fmt.Sprintf("ROUND %d   allies %d : %d enemies   %s",
		max(s.Round, 1), s.Wins[core.TeamAllies], s.Wins[core.TeamEnemies], s.Phase)
	if s.Muted {
		hud += "   [muted]"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)

	goals := s.Goals()
	line := ""
	for _, side := range core.Sides {
		gv := goals[side]
		if gv.Entity == 0 {
			continue
		}
		if gv.Eliminated {
			line += fmt.Sprintf("%s out   ", side)
		} else {
			line += fmt.Sprintf("%s %d/%d   ", side, gv.HitPoints, gv.MaxHitPoints)
		}
	}
	c := g.career.Career()
	line += fmt.Sprintf("| career %d-%d", c.AlliesWins, c.EnemiesWins)
	ebitenutil.DebugPrintAt(screen, line, 8, 20)

	if banner := render.Banner(s); banner != "" {
		x := g.w/2 - len(banner)*3
		vector.DrawFilledRect(screen, float32(x-4), float32(g.h/2-4), float32(len(banner)*6+8), 24,
			color.RGBA{0, 0, 0, 180}, false)
		ebitenutil.DebugPrintAt(screen, banner, x, g.h/2)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
