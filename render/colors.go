package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ball-arena/core"
)

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbFloorDot   = RGB{52, 54, 74}
	RgbStatusText = RGB{0, 0, 0}
	RgbHUDText    = RGB{192, 202, 245}
	RgbOverlay    = RGB{255, 255, 255}

	RgbBall    = RGB{255, 255, 255}
	RgbBarrier = RGB{169, 177, 214}
	RgbWall    = RGB{86, 95, 137}

	RgbAllies        = RGB{125, 207, 255} // Sky blue
	RgbAlliesPaddle  = RGB{122, 162, 247}
	RgbEnemies       = RGB{247, 118, 142} // Red pink
	RgbEnemiesPaddle = RGB{255, 158, 100}

	RgbGoalLow   = RGB{200, 50, 50}
	RgbGoalFull  = RGB{0, 200, 0}
	RgbEliminate = RGB{60, 60, 60}

	RgbPhaseCountdown = RGB{224, 175, 104}
	RgbPhasePlaying   = RGB{158, 206, 106}
	RgbPhasePaused    = RGB{135, 206, 250}
	RgbPhaseRoundOver = RGB{187, 154, 247}
	RgbPhaseGameOver  = RGB{255, 0, 0}
)

// TeamColor returns the goal tint for a team
func TeamColor(t core.Team) RGB {
	if t == core.TeamAllies {
		return RgbAllies
	}
	return RgbEnemies
}

// PaddleColor returns the paddle tint for a team
func PaddleColor(t core.Team) RGB {
	if t == core.TeamAllies {
		return RgbAlliesPaddle
	}
	return RgbEnemiesPaddle
}

// HealthColor grades from red to green by remaining fraction in HCL space
func HealthColor(current, max uint32) RGB {
	if max == 0 || current == 0 {
		return RgbGoalLow
	}
	if current >= max {
		return RgbGoalFull
	}
	t := float64(current) / float64(max)
	c := toColorful(RgbGoalLow).BlendHcl(toColorful(RgbGoalFull), t).Clamped()
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// PhaseColor is the status bar background for a phase
func PhaseColor(p core.Phase) RGB {
	switch p {
	case core.PhaseCountdown:
		return RgbPhaseCountdown
	case core.PhasePlaying:
		return RgbPhasePlaying
	case core.PhasePaused:
		return RgbPhasePaused
	case core.PhaseRoundOver:
		return RgbPhaseRoundOver
	case core.PhaseGameOver:
		return RgbPhaseGameOver
	}
	return RgbHUDText
}
