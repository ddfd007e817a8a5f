package render

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ball-arena/arena"
	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/vmath"
)

const (
	screenW = 80
	screenH = 30
)

func newTestRenderer(t *testing.T) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(screenW, screenH)
	return NewTerminalRenderer(screen), screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	var b strings.Builder
	for x := 0; x < screenW; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func ballView(x, z, alpha float64) arena.EntityView {
	return arena.EntityView{
		Entity:   1,
		Kind:     core.KindBall,
		State:    component.LifecycleActive,
		Position: vmath.Vec3F{X: x, Z: z},
		Shape:    component.ShapeComponent{Kind: component.ShapeSphere, Radius: 0.25},
		Active:   alpha >= 1,
		Alpha:    alpha,
	}
}

func goalView(side core.GoalSide, hp uint32, eliminated bool) arena.EntityView {
	return arena.EntityView{
		Entity:       core.Entity(10 + side),
		Kind:         core.KindGoal,
		State:        component.LifecycleActive,
		Position:     vmath.Vec3F{Z: -10.25},
		Shape:        component.ShapeComponent{Kind: component.ShapeBox, HalfX: 10, HalfZ: 0.25},
		Side:         side,
		HasTeam:      true,
		Alpha:        1,
		HitPoints:    hp,
		MaxHitPoints: 5,
		Eliminated:   eliminated,
	}
}

func TestRenderBall(t *testing.T) {
	r, screen := newTestRenderer(t)
	snap := &arena.Snapshot{
		Phase:      core.PhasePlaying,
		HalfExtent: 10,
		Entities:   []arena.EntityView{ballView(2, 3, 1)},
	}
	r.Draw(snap)

	c, row := r.Viewport(10).Cell(2, 3)
	if got := runeAt(screen, c, row); got != '●' {
		t.Errorf("ball cell = %q, want ●", got)
	}
	_, _, style, _ := screen.GetContent(c, row)
	if fg, _, _ := style.Decompose(); fg != RgbBall.Color() {
		t.Errorf("ball fg = %v, want %v", fg, RgbBall.Color())
	}
}

func TestRenderSkipsInvisible(t *testing.T) {
	r, screen := newTestRenderer(t)
	snap := &arena.Snapshot{
		Phase:      core.PhasePlaying,
		HalfExtent: 10,
		Entities:   []arena.EntityView{ballView(2, 3, 0)},
	}
	r.Draw(snap)

	c, row := r.Viewport(10).Cell(2, 3)
	if got := runeAt(screen, c, row); got != ' ' {
		t.Errorf("spawning ball drawn as %q", got)
	}
}

func TestRenderBallAboveGoal(t *testing.T) {
	r, screen := newTestRenderer(t)
	snap := &arena.Snapshot{
		Phase:      core.PhasePlaying,
		HalfExtent: 10,
		Entities:   []arena.EntityView{ballView(0, -10.25, 1), goalView(core.SideTop, 5, false)},
	}
	r.Draw(snap)

	c, row := r.Viewport(10).Cell(0, -10.25)
	if got := runeAt(screen, c, row); got != '●' {
		t.Errorf("overlap cell = %q, want ball on top", got)
	}
	c, row = r.Viewport(10).Cell(5, -10.25)
	if got := runeAt(screen, c, row); got != '▓' {
		t.Errorf("goal cell = %q, want ▓", got)
	}
}

func TestStatusBar(t *testing.T) {
	r, screen := newTestRenderer(t)
	snap := &arena.Snapshot{
		Phase:      core.PhasePlaying,
		Round:      2,
		HalfExtent: 10,
		Wins:       [core.TeamCount]int{core.TeamAllies: 1},
		Muted:      true,
		Entities:   []arena.EntityView{goalView(core.SideTop, 0, true), goalView(core.SideBottom, 3, false)},
	}
	snap.Entities[1].Position = vmath.Vec3F{Z: 10.25}
	r.Draw(snap)

	status := rowText(screen, screenH-1)
	for _, want := range []string{"PLAYING", "top out", "bottom 3/5"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
	board := rowText(screen, 0)
	for _, want := range []string{"ROUND 2", "allies 1 : 0 enemies", "[muted]"} {
		if !strings.Contains(board, want) {
			t.Errorf("scoreboard %q missing %q", board, want)
		}
	}
}

func TestBanner(t *testing.T) {
	tests := []struct {
		snap arena.Snapshot
		want string
	}{
		{arena.Snapshot{Phase: core.PhasePlaying}, ""},
		{arena.Snapshot{Phase: core.PhaseCountdown, Round: 3}, "ROUND 3 - GET READY"},
		{arena.Snapshot{Phase: core.PhasePaused}, "PAUSED"},
		{arena.Snapshot{Phase: core.PhaseRoundOver, HasWinner: true, LastWinner: core.TeamAllies}, "ALLIES TAKE THE ROUND"},
		{arena.Snapshot{Phase: core.PhaseGameOver, MatchDecided: true, Champion: core.TeamEnemies}, "ENEMIES WIN THE MATCH"},
	}
	for _, tt := range tests {
		got := Banner(&tt.snap)
		if tt.want == "" && got != "" || !strings.Contains(got, tt.want) {
			t.Errorf("Banner(%s) = %q, want %q", tt.snap.Phase, got, tt.want)
		}
	}
}

func TestRenderArenaSnapshot(t *testing.T) {
	r, screen := newTestRenderer(t)
	a, err := arena.New(config.Default(), arena.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Tick(0)
	snap := a.Snapshot()
	r.RenderFrame(&snap)

	if !strings.Contains(rowText(screen, screenH-1), "COUNTDOWN") {
		t.Errorf("status = %q", rowText(screen, screenH-1))
	}
	if !strings.Contains(rowText(screen, screenH/2), "GET READY") {
		t.Errorf("banner row = %q", rowText(screen, screenH/2))
	}
}

func TestRenderTinyScreen(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.Resize(2, 2)
	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("tiny screen panicked: %v", rec)
		}
	}()
	r.Draw(&arena.Snapshot{HalfExtent: 10, Entities: []arena.EntityView{ballView(0, 0, 1)}})
}
