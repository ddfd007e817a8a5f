package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ball-arena/arena"
	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
)

// minVisibleAlpha hides entities still fully faded out
const minVisibleAlpha = 0.05

// Glyphs per entity kind
var kindGlyph = [core.KindCount]rune{
	core.KindBall:    '●',
	core.KindPaddle:  '█',
	core.KindGoal:    '▓',
	core.KindBarrier: '◆',
	core.KindWall:    '▒',
}

// drawOrder puts moving entities above the static ones
var drawOrder = [core.KindCount]int{
	core.KindGoal:    0,
	core.KindWall:    1,
	core.KindBarrier: 2,
	core.KindPaddle:  3,
	core.KindBall:    4,
}

// TerminalRenderer draws arena snapshots onto a tcell screen
// Row 0 is the scoreboard, the last row is the status bar, the arena fills the rest
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	order  []arena.EntityView
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates dimensions after a tcell resize event
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Viewport returns the arena block for the current size
func (r *TerminalRenderer) Viewport(halfExtent float64) Viewport {
	return NewViewport(0, 1, r.width, max(r.height-2, 1), halfExtent)
}

// RenderFrame draws one snapshot and shows it
func (r *TerminalRenderer) RenderFrame(snap *arena.Snapshot) {
	r.Draw(snap)
	r.screen.Show()
}

// Draw composes a snapshot without flushing to the terminal
func (r *TerminalRenderer) Draw(snap *arena.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground.Color()).Foreground(RgbHUDText.Color())
	r.screen.Fill(' ', defaultStyle)
	if r.width < 1 || r.height < 3 {
		return
	}

	vp := r.Viewport(snap.HalfExtent)
	r.drawFloor(vp, snap.HalfExtent, defaultStyle)
	r.drawEntities(vp, snap)
	r.drawScoreboard(snap, defaultStyle)
	r.drawStatusBar(snap, defaultStyle)
	r.drawOverlay(snap, defaultStyle)
}

// drawFloor marks the playfield boundary corners and centre
func (r *TerminalRenderer) drawFloor(vp Viewport, half float64, style tcell.Style) {
	dot := style.Foreground(RgbFloorDot.Color())
	for _, p := range [][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}, {0, 0}} {
		c, row := vp.Cell(p[0], p[1])
		r.set(vp, c, row, '·', dot)
	}
}

func (r *TerminalRenderer) drawEntities(vp Viewport, snap *arena.Snapshot) {
	r.order = append(r.order[:0], snap.Entities...)
	slices.SortStableFunc(r.order, func(a, b arena.EntityView) int {
		return drawOrder[a.Kind%core.KindCount] - drawOrder[b.Kind%core.KindCount]
	})

	for i := range r.order {
		v := &r.order[i]
		if v.State == component.LifecycleRemoved || v.Alpha < minVisibleAlpha {
			continue
		}
		fg := Blend(RgbBackground, EntityColor(v), v.Alpha)
		style := tcell.StyleDefault.Background(RgbBackground.Color()).Foreground(fg.Color())
		glyph := entityGlyph(v)

		switch v.Shape.Kind {
		case component.ShapeBox:
			c0, r0, c1, r1 := vp.Rect(v.Position.X, v.Position.Z, v.Shape.HalfX, v.Shape.HalfZ)
			r.fill(vp, c0, r0, c1, r1, glyph, style)
		case component.ShapeCylinder:
			c0, r0, c1, r1 := vp.Rect(v.Position.X, v.Position.Z, v.Shape.Radius*0.5, v.Shape.Radius*0.5)
			r.fill(vp, c0, r0, c1, r1, glyph, style)
		default:
			c, row := vp.Cell(v.Position.X, v.Position.Z)
			r.set(vp, c, row, glyph, style)
		}
	}
}

func entityGlyph(v *arena.EntityView) rune {
	if v.Kind >= core.KindCount {
		return '?'
	}
	if v.Kind == core.KindGoal && v.Eliminated {
		return '░'
	}
	return kindGlyph[v.Kind]
}

// EntityColor is the base tint for an entity before fading
func EntityColor(v *arena.EntityView) RGB {
	switch v.Kind {
	case core.KindBall:
		return RgbBall
	case core.KindPaddle:
		return PaddleColor(v.Team)
	case core.KindGoal:
		if v.Eliminated {
			return RgbEliminate
		}
		return Blend(TeamColor(v.Team), HealthColor(v.HitPoints, v.MaxHitPoints), 0.5)
	case core.KindBarrier:
		return RgbBarrier
	}
	return RgbWall
}

// drawScoreboard writes round, wins and mute state on row 0
func (r *TerminalRenderer) drawScoreboard(snap *arena.Snapshot, style tcell.Style) {
	text := fmt.Sprintf(" ROUND %d   allies %d : %d enemies",
		max(snap.Round, 1), snap.Wins[core.TeamAllies], snap.Wins[core.TeamEnemies])
	if snap.Muted {
		text += "   [muted]"
	}
	r.text(0, 0, text, style)
}

// drawStatusBar shows the phase and each goal's hit points on the last row
func (r *TerminalRenderer) drawStatusBar(snap *arena.Snapshot, style tcell.Style) {
	y := r.height - 1
	phase := " " + strings.ToUpper(snap.Phase.String()) + " "
	x := r.text(0, y, phase, style.Background(PhaseColor(snap.Phase).Color()).Foreground(RgbStatusText.Color()))
	x++

	goals := snap.Goals()
	for _, side := range core.Sides {
		g := goals[side]
		if g.Entity == 0 {
			continue
		}
		label := fmt.Sprintf(" %s %d/%d ", side, g.HitPoints, g.MaxHitPoints)
		fg := HealthColor(g.HitPoints, g.MaxHitPoints)
		if g.Eliminated {
			label = fmt.Sprintf(" %s out ", side)
			fg = RgbEliminate
		}
		x = r.text(x, y, label, style.Foreground(fg.Color()))
	}
}

// drawOverlay centres a banner over the arena for non-playing phases
func (r *TerminalRenderer) drawOverlay(snap *arena.Snapshot, style tcell.Style) {
	msg := Banner(snap)
	if msg == "" {
		return
	}
	x := max((r.width-len([]rune(msg)))/2, 0)
	y := r.height / 2
	r.text(x, y, msg, style.Foreground(RgbOverlay.Color()).Bold(true))
}

// Banner returns the centred message for a snapshot, empty while playing
func Banner(snap *arena.Snapshot) string {
	switch snap.Phase {
	case core.PhaseCountdown:
		return fmt.Sprintf(" ROUND %d - GET READY ", max(snap.Round, 1))
	case core.PhasePaused:
		return " PAUSED - p to resume "
	case core.PhaseRoundOver:
		if snap.HasWinner {
			return fmt.Sprintf(" %s TAKE THE ROUND ", strings.ToUpper(snap.LastWinner.String()))
		}
		return " ROUND OVER "
	case core.PhaseGameOver:
		if snap.MatchDecided {
			return fmt.Sprintf(" %s WIN THE MATCH - r to restart ", strings.ToUpper(snap.Champion.String()))
		}
		return " GAME OVER - r to restart "
	}
	return ""
}

func (r *TerminalRenderer) set(vp Viewport, col, row int, ch rune, style tcell.Style) {
	if !vp.Contains(col, row) {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *TerminalRenderer) fill(vp Viewport, c0, r0, c1, r1 int, ch rune, style tcell.Style) {
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.set(vp, col, row, ch, style)
		}
	}
}

// text writes s from (x, y) clipped to the screen and returns the next column
func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
